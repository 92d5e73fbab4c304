// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package knowledge

// HelpText is the response to "help".
const HelpText = `🔹 Topics you can ask:
   • Java, OOP, AI, ML, Python
   • My creator / name
   • 'search <topic>' → simulate web info
   • 'time' → show system time
   • 'bye' → exit conversation`

// DefaultPairs are the built-in topics in lookup order. "java" precedes
// "python" and both precede "help", so earlier keywords shadow later ones.
var DefaultPairs = []Pair{
	{Keyword: "hello", Response: "Hello there! 👋 I'm here 24/7. Ask me about Java, AI, or tech."},
	{Keyword: "hi", Response: "Hey! How’s your day going?"},
	{Keyword: "name", Response: "I'm SmartChatBot — your intelligent Java assistant."},
	{Keyword: "java", Response: "Java is a class-based, object-oriented language developed by Sun Microsystems (now Oracle)."},
	{Keyword: "oop", Response: "OOP stands for Object-Oriented Programming. It focuses on objects and classes for modular design."},
	{Keyword: "ai", Response: "AI — Artificial Intelligence — enables machines to mimic human intelligence."},
	{Keyword: "ml", Response: "Machine Learning (ML) is a subset of AI that allows systems to learn from data."},
	{Keyword: "python", Response: "Python is popular for AI and data science due to its simplicity and large ecosystem."},
	{Keyword: "creator", Response: "I was built in Go as a terminal chat bot by a passionate developer."},
	{Keyword: "help", Response: HelpText},
	{Keyword: "bye", Response: "Goodbye 👋 It was nice chatting with you!"},
}

var defaultTable = MustNew(DefaultPairs...)

// Default returns the built-in table. The returned table is shared and
// immutable.
func Default() *Table {
	return defaultTable
}
