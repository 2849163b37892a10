package config

var CategoryWeights = map[string]int{
	"🕯️ Information": 0,
	"⚔️ Raid":        10,
	"📅 Events":       20,
	"🐾 Mascot":       30,
	"⚙️ Settings":    50,
}
