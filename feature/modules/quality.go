package modules

// quality holds the code quality modules.
var quality = []entry{
	{"US-0601", withInit},
	{"US-0602", withInit},
	{"US-0603", plain},
	{"US-0604", withInit},
	{"US-0605", plain},
}
