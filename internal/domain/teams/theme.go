package teams

// Team is one franchise the home page links to.
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ThemeClass string `json:"themeClass"`
}

// Known lists the franchises with a dedicated page theme, in home page order.
var Known = []Team{
	{ID: "RCB", Name: "Royal Challengers Bangalore", ThemeClass: "rcb"},
	{ID: "KKR", Name: "Kolkata Knight Riders", ThemeClass: "kkr"},
	{ID: "KXP", Name: "Kings XI Punjab", ThemeClass: "kxp"},
	{ID: "CSK", Name: "Chennai Super Kings", ThemeClass: "csk"},
	{ID: "RR", Name: "Rajasthan Royals", ThemeClass: "rr"},
	{ID: "MI", Name: "Mumbai Indians", ThemeClass: "mi"},
	{ID: "SH", Name: "Sunrisers Hyderabad", ThemeClass: "srh"},
	{ID: "DC", Name: "Delhi Capitals", ThemeClass: "dc"},
}

// ThemeClass maps a route team identifier to its CSS class suffix.
// Matching is exact; unknown identifiers map to "".
func ThemeClass(id string) string {
	switch id {
	case "RCB":
		return "rcb"
	case "KKR":
		return "kkr"
	case "KXP":
		return "kxp"
	case "CSK":
		return "csk"
	case "RR":
		return "rr"
	case "MI":
		return "mi"
	case "SH":
		return "srh"
	case "DC":
		return "dc"
	default:
		return ""
	}
}

// ContainerClass returns the class list for the page container.
func ContainerClass(id string) string {
	return "team-matches-container " + ThemeClass(id)
}
