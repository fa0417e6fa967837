package modules

// editing holds the editor modules.
var editing = []entry{
	{"US-0101", withInit},
	{"US-0102", withInit},
	{"US-0103", plain},
	{"US-0104", plain},
	{"US-0105", plain},
}
