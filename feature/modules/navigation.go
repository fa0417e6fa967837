package modules

// navigation holds the code navigation modules.
var navigation = []entry{
	{"US-0201", withInit},
	{"US-0202", withInit},
	{"US-0203", withInit},
	{"US-0204", plain},
	{"US-0205", withInit},
}
