package modules

// fileManagement holds the workspace file modules.
var fileManagement = []entry{
	{"US-0401", withInit},
	{"US-0402", plain},
	{"US-0403", plain},
	{"US-0404", withInit},
	{"US-0405", plain},
}
