package streaks

// DeedKey identifies one trackable daily action.
type DeedKey string

// DeedCategory groups deeds into the four dashboard sections.
type DeedCategory string

const (
	CategoryPrayer DeedCategory = "prayer"
	CategoryIman   DeedCategory = "iman"
	CategoryTummy  DeedCategory = "tummy"
	CategorySocial DeedCategory = "social"
)

const (
	DeedPrayerFive       DeedKey = "prayer_five"
	DeedPrayerFajrMasjid DeedKey = "prayer_fajr_masjid"
	DeedPrayerTaraweeh   DeedKey = "prayer_taraweeh"
	DeedImanQuran        DeedKey = "iman_quran"
	DeedImanDhikr        DeedKey = "iman_dhikr"
	DeedImanDua          DeedKey = "iman_dua"
	DeedTummySuhoor      DeedKey = "tummy_suhoor"
	DeedTummyIftar       DeedKey = "tummy_iftar"
	DeedTummyFast        DeedKey = "tummy_fast"
	DeedSocialCharity    DeedKey = "social_charity"
	DeedSocialFamily     DeedKey = "social_family"
	DeedSocialWorkout    DeedKey = "social_workout"
)

// Deed describes one entry of the fixed deed table.
type Deed struct {
	Key      DeedKey
	Label    string
	Category DeedCategory
}

// Deeds is the full, fixed deed table: 4 categories of 3 deeds each.
var Deeds = []Deed{
	{DeedPrayerFive, "5 Daily Prayers", CategoryPrayer},
	{DeedPrayerFajrMasjid, "Fajr in Masjid", CategoryPrayer},
	{DeedPrayerTaraweeh, "Taraweeh", CategoryPrayer},
	{DeedImanQuran, "Read Quran", CategoryIman},
	{DeedImanDhikr, "Morning/Evening Dhikr", CategoryIman},
	{DeedImanDua, "Personal Dua", CategoryIman},
	{DeedTummySuhoor, "Eat Suhoor", CategoryTummy},
	{DeedTummyIftar, "Iftar on Time", CategoryTummy},
	{DeedTummyFast, "Completed Fast", CategoryTummy},
	{DeedSocialCharity, "Give Charity", CategorySocial},
	{DeedSocialFamily, "Quality Family Time", CategorySocial},
	{DeedSocialWorkout, "Physical Workout", CategorySocial},
}

// TotalDeeds is the maximum points_earned a single day can hold.
const TotalDeeds = 12

// Categories in dashboard order.
var Categories = []DeedCategory{CategoryPrayer, CategoryIman, CategoryTummy, CategorySocial}

// DeedSet maps each deed key to its completion flag for one logical day.
type DeedSet map[DeedKey]bool

// IsValidDeed reports whether key belongs to the fixed deed table.
func IsValidDeed(key DeedKey) bool {
	for _, d := range Deeds {
		if d.Key == key {
			return true
		}
	}
	return false
}

// CountCompleted returns the number of true flags in the set. This is the
// single definition of points_earned.
func CountCompleted(deeds DeedSet) int {
	n := 0
	for _, done := range deeds {
		if done {
			n++
		}
	}
	return n
}

// IsCategoryComplete reports whether every deed in the category is done.
func IsCategoryComplete(deeds DeedSet, category DeedCategory) bool {
	for _, d := range Deeds {
		if d.Category == category && !deeds[d.Key] {
			return false
		}
	}
	return true
}
