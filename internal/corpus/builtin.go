package corpus

// builtin frequencies are the 1990 Census percentages for the most common names.

var maleNames = []Entry{
	{"James", 3.318}, {"John", 3.271}, {"Robert", 3.143}, {"Michael", 2.629},
	{"William", 2.451}, {"David", 2.363}, {"Richard", 1.703}, {"Charles", 1.523},
	{"Joseph", 1.404}, {"Thomas", 1.380}, {"Christopher", 1.035}, {"Daniel", 0.974},
	{"Paul", 0.948}, {"Mark", 0.938}, {"Donald", 0.931}, {"George", 0.927},
	{"Kenneth", 0.826}, {"Steven", 0.780}, {"Edward", 0.779}, {"Brian", 0.736},
	{"Ronald", 0.725}, {"Anthony", 0.721}, {"Kevin", 0.671}, {"Jason", 0.660},
	{"Matthew", 0.657}, {"Gary", 0.650}, {"Timothy", 0.640}, {"Jose", 0.613},
	{"Larry", 0.598}, {"Jeffrey", 0.591},
}

var femaleNames = []Entry{
	{"Mary", 2.629}, {"Patricia", 1.073}, {"Linda", 1.035}, {"Barbara", 0.980},
	{"Elizabeth", 0.937}, {"Jennifer", 0.932}, {"Maria", 0.828}, {"Susan", 0.794},
	{"Margaret", 0.768}, {"Dorothy", 0.727}, {"Lisa", 0.704}, {"Nancy", 0.669},
	{"Karen", 0.667}, {"Betty", 0.666}, {"Helen", 0.663}, {"Sandra", 0.629},
	{"Donna", 0.583}, {"Carol", 0.565}, {"Ruth", 0.562}, {"Sharon", 0.522},
	{"Michelle", 0.519}, {"Laura", 0.510}, {"Sarah", 0.508}, {"Kimberly", 0.504},
	{"Deborah", 0.494}, {"Jessica", 0.490}, {"Shirley", 0.482}, {"Cynthia", 0.469},
	{"Angela", 0.468}, {"Melissa", 0.462},
}

var lastNames = []Entry{
	{"Smith", 1.006}, {"Johnson", 0.810}, {"Williams", 0.699}, {"Jones", 0.621},
	{"Brown", 0.621}, {"Davis", 0.480}, {"Miller", 0.424}, {"Wilson", 0.339},
	{"Moore", 0.312}, {"Taylor", 0.311}, {"Anderson", 0.311}, {"Thomas", 0.311},
	{"Jackson", 0.310}, {"White", 0.279}, {"Harris", 0.275}, {"Martin", 0.273},
	{"Thompson", 0.269}, {"Garcia", 0.254}, {"Martinez", 0.234}, {"Robinson", 0.233},
	{"Clark", 0.231}, {"Rodriguez", 0.229}, {"Lewis", 0.226}, {"Lee", 0.220},
	{"Walker", 0.219}, {"Hall", 0.200}, {"Allen", 0.199}, {"Young", 0.193},
	{"Hernandez", 0.192}, {"King", 0.190},
}

// Builtin returns a small embedded set for runs without corpus files.
func Builtin() Set {
	return Set{
		Male:   mustNew(maleNames),
		Female: mustNew(femaleNames),
		Last:   mustNew(lastNames),
	}
}

func mustNew(entries []Entry) *Pool {
	p, err := New(entries)
	if err != nil {
		panic("corpus: builtin table: " + err.Error())
	}
	return p
}
