package generator

import "github.com/mcdev12/rosterpatch/go/internal/models"

var firstNames = []string{
	"James", "Michael", "Chris", "Derrick", "Kyrie", "Trae", "Ja", "De'Aaron", "Tyrese", "Devin",
	"Bradley", "Zach", "CJ", "Jordan", "Jaylen", "DeMar", "Terry", "LeBron", "Kevin", "Paul",
	"Kawhi", "Jimmy", "Jayson", "Brandon", "Mikal", "OG", "Harrison", "Anthony", "Pascal", "Julius",
	"Zion", "Evan", "Jaren", "Lauri", "Kristaps", "Alperen", "Bam", "Joel", "Nikola", "Rudy",
	"Myles", "Jarrett", "Clint", "Jakob", "Steven", "Brook", "Marcus", "DeAndre", "Kyle", "Tyler",
}

var lastNames = []string{
	"Johnson", "Williams", "Brown", "Jones", "Davis", "Miller", "Wilson", "Moore", "Taylor", "Anderson",
	"Thomas", "Jackson", "White", "Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson", "Clark",
	"Lewis", "Walker", "Hall", "Allen", "Young", "King", "Wright", "Lopez", "Hill", "Scott",
	"Green", "Adams", "Baker", "Nelson", "Carter", "Mitchell", "Perez", "Roberts", "Turner", "Phillips",
}

var heights = map[models.Position][]string{
	models.PositionPointGuard:    {`6'0"`, `6'1"`, `6'2"`, `6'3"`},
	models.PositionShootingGuard: {`6'3"`, `6'4"`, `6'5"`, `6'6"`},
	models.PositionSmallForward:  {`6'6"`, `6'7"`, `6'8"`, `6'9"`},
	models.PositionPowerForward:  {`6'8"`, `6'9"`, `6'10"`, `6'11"`},
	models.PositionCenter:        {`6'10"`, `6'11"`, `7'0"`, `7'1"`, `7'2"`},
}

var weights = map[models.Position][]string{
	models.PositionPointGuard:    {"170", "175", "180", "185", "190"},
	models.PositionShootingGuard: {"185", "190", "195", "200"},
	models.PositionSmallForward:  {"200", "210", "220", "230"},
	models.PositionPowerForward:  {"220", "230", "240", "250"},
	models.PositionCenter:        {"240", "250", "260", "270", "280"},
}
