package modules

// performance holds the performance target modules.
var performance = []entry{
	{"US-0501", withInit},
	{"US-0502", withInit},
	{"US-0503", withInit},
	{"US-0504", withInit},
	{"US-0505", withInit},
}
