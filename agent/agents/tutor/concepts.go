package tutor

import (
	catalogx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/catalog"
)

// Concept is one coding topic the tutor can explain, quiz on, or ask the
// learner to teach back.
type Concept struct {
	ID              string
	Title           string
	Summary         string
	SampleQuestion  string
	TeachBackPrompt string
}

var seedConcepts = []Concept{
	{
		ID:              "variables",
		Title:           "Variables",
		Summary:         "Variables store values so you can reuse them later, much like a labeled box you put information into. For example, if you store the number 10 in a variable named 'age', you can refer to that value simply by saying 'age'. This is essential for writing code that can adapt and remember information.",
		SampleQuestion:  "What is a variable and why is it useful? Focus on the reusability aspect.",
		TeachBackPrompt: "Explain what a variable is and why it's useful in your own words.",
	},
	{
		ID:              "loops",
		Title:           "Loops",
		Summary:         "Loops let you repeat an action multiple times without having to write the same code over and over. Think of it like setting an alarm to go off every morning at 7 a.m.—the loop keeps repeating the action. The two main types are 'for' loops, which run a set number of times, and 'while' loops, which run as long as a certain condition is true.",
		SampleQuestion:  "What is the difference between a for loop and a while loop?",
		TeachBackPrompt: "Explain the difference between a for loop and a while loop in detail.",
	},
	{
		ID:              "function",
		Title:           "Functions",
		Summary:         "Functions are blocks of organized, reusable code that perform a single, related action. They allow you to modularize your code, making it easier to read, test, and debug. When you need to perform an action multiple times, you simply call the function instead of writing the code repeatedly.",
		SampleQuestion:  "Explain how functions help with code organization and reusability.",
		TeachBackPrompt: "Teach me back the concept of a function and its main benefits.",
	},
	{
		ID:              "if_else",
		Title:           "If-Else Statements",
		Summary:         "If-Else statements are the fundamental way to control the flow of a program. They allow your code to make decisions based on whether a condition is true or false. If the condition is true, the code in the 'if' block runs; otherwise, the code in the 'else' block runs.",
		SampleQuestion:  "Describe a real-world scenario where an If-Else statement would be necessary in a program.",
		TeachBackPrompt: "Explain how if-else statements control program flow and give an example.",
	},
	{
		ID:              "data_types",
		Title:           "Data Types",
		Summary:         "Data types define the kind of value a variable can hold, such as numbers, text, or boolean (true/false) values. Common types include integers, floats, strings, and booleans. Using the correct data type is crucial for performing accurate operations and managing memory efficiently.",
		SampleQuestion:  "What is a Data Type and what's the difference between an integer and a string?",
		TeachBackPrompt: "Teach me the difference between an integer, a string, and a boolean.",
	},
	{
		ID:              "operators",
		Title:           "Operators",
		Summary:         "Operators are special symbols that perform operations on variables and values. They are categorized into arithmetic (like +, -), comparison (like ==, >), and logical (like AND, OR) operators. They are the tools you use to manipulate data and create conditions in your code.",
		SampleQuestion:  "Explain the difference between the assignment operator (=) and the comparison operator (==).",
		TeachBackPrompt: "Explain the three main categories of operators and give an example of one.",
	},
	{
		ID:              "oop",
		Title:           "OOP (Object-Oriented Programming)",
		Summary:         "Object-Oriented Programming is a paradigm based on the concept of 'objects,' which can contain data and code. The main principles are encapsulation, inheritance, and polymorphism. It helps manage complexity by modeling real-world entities and their interactions in code.",
		SampleQuestion:  "Summarize the core principles of Object-Oriented Programming (OOP).",
		TeachBackPrompt: "Explain the core idea behind Object-Oriented Programming.",
	},
}

// NewConceptCatalog loads the tutor's concept library.
func NewConceptCatalog() *catalogx.Catalog[Concept] {
	return catalogx.MustNew(seedConcepts, func(c Concept) string { return c.ID })
}
