package modules

// collaboration holds the real-time collaboration modules.
var collaboration = []entry{
	{"US-0301", withInit},
	{"US-0302", plain},
	{"US-0303", withInit},
	{"US-0304", plain},
	{"US-0305", withInit},
}
