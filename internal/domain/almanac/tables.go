package almanac

// Fixed sexagenary-cycle tables. All of these are process-wide
// immutable configuration; nothing may mutate them after init.

var heavenlyStems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var heavenlyStemsRomanized = []string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}

var earthlyBranches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var earthlyBranchesRomanized = []string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}

var animals = []string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// clashAnimals[i] is the animal six positions opposite animals[i].
var clashAnimals = []string{
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
}

// Two stems per element, cycling Wood/Fire/Earth/Metal/Water.
var elements = []string{
	"Wood", "Wood", "Fire", "Fire", "Earth", "Earth",
	"Metal", "Metal", "Water", "Water",
}

var dayOfficersChinese = []string{"建", "除", "满", "平", "定", "执", "破", "危", "成", "收", "开", "闭"}

var dayOfficers = []string{
	"Establish", "Remove", "Full", "Balance", "Stable", "Initiate",
	"Break", "Danger", "Success", "Receive", "Open", "Close",
}

type officerActivities struct {
	good []string
	bad  []string
}

// Indexed by Day Officer.
var activitiesByOfficer = []officerActivities{
	{ // Establish (建)
		good: []string{"Worship", "Travel", "Meeting friends"},
		bad:  []string{"Construction", "Moving", "Opening business"},
	},
	{ // Remove (除)
		good: []string{"Cleaning", "Medical treatment", "Pest control", "Ending bad habits"},
		bad:  []string{"Marriage", "Opening business"},
	},
	{ // Full (满)
		good: []string{"Worship", "Engagements", "Moving", "Construction"},
		bad:  []string{"Medical treatment", "Lawsuits"},
	},
	{ // Balance (平)
		good: []string{"Road repairs", "Painting", "Decorating"},
		bad:  []string{"Marriage", "Travel", "Lawsuits"},
	},
	{ // Stable (定)
		good: []string{"Marriage", "Engagements", "Construction", "Moving", "Signing contracts"},
		bad:  []string{"Lawsuits", "Travel far"},
	},
	{ // Initiate (执)
		good: []string{"Construction", "Planting", "Catching pests"},
		bad:  []string{"Moving", "Travel", "Opening business"},
	},
	{ // Break (破)
		good: []string{"Demolition", "Medical treatment"},
		bad:  []string{"Marriage", "Moving", "Opening business", "Signing contracts", "Travel"},
	},
	{ // Danger (危)
		good: []string{"Worship", "Fasting", "Quiet activities"},
		bad:  []string{"Construction", "Moving", "Travel", "Marriage", "Opening business"},
	},
	{ // Success (成)
		good: []string{"Marriage", "Opening business", "Construction", "Moving", "Signing contracts", "Travel"},
		bad:  []string{"Lawsuits"},
	},
	{ // Receive (收)
		good: []string{"Collecting debts", "Savings", "Storage", "Harvest"},
		bad:  []string{"Medical treatment", "Funerals"},
	},
	{ // Open (开)
		good: []string{"Opening business", "Marriage", "Moving", "Construction", "Travel", "Celebrations"},
		bad:  []string{"Funerals"},
	},
	{ // Close (闭)
		good: []string{"Storage", "Burial", "Quiet reflection"},
		bad:  []string{"Opening business", "Marriage", "Construction", "Moving", "Travel"},
	},
}

// monthBranchByMonth maps the 1-based Gregorian month to the branch of
// the solar month it mostly overlaps: Jan=丑(1), Feb=寅(2), ...,
// Dec=子(0). This is a deliberate simplification of the true
// solar-term boundaries.
var monthBranchByMonth = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0}

var lunarMonthNames = []string{
	"", "正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

var lunarDayNames = map[int]string{
	1: "初一", 2: "初二", 3: "初三", 4: "初四", 5: "初五",
	6: "初六", 7: "初七", 8: "初八", 9: "初九", 10: "初十",
	11: "十一", 12: "十二", 13: "十三", 14: "十四", 15: "十五",
	16: "十六", 17: "十七", 18: "十八", 19: "十九", 20: "二十",
	21: "廿一", 22: "廿二", 23: "廿三", 24: "廿四", 25: "廿五",
	26: "廿六", 27: "廿七", 28: "廿八", 29: "廿九", 30: "三十",
}
