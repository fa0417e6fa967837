package modules

// aiGeneration holds the AI code generation modules.
var aiGeneration = []entry{
	{"US-0001", withInit},
	{"US-0002", plain},
	{"US-0003", withInit},
	{"US-0004", withInit},
	{"US-0005", plain},
}
