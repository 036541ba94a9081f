package groove

// Enumerations of the engine's vocabulary, for discovery endpoints and CLI
// help text. Slices are fresh copies; callers may reorder them.

func Styles() []Style {
	return []Style{StylePopPunk, StyleSingerSongwriter, StyleReggaeSka}
}

func KickPatterns() []KickPattern {
	return []KickPattern{
		KickPunk, KickFourFloor, KickHalfTime, KickDouble,
		KickSkank, KickOneDrop, KickDBeat,
	}
}

func HihatPatterns() []HihatPattern {
	return []HihatPattern{
		HihatEighth, HihatSixteenth, HihatRide,
		HihatOpenClosed, HihatSkank, HihatSwing,
	}
}

func RudimentTypes() []RudimentType {
	return []RudimentType{
		RudimentMixed, RudimentRolls, RudimentDiddles,
		RudimentFlams, RudimentDrags,
	}
}

// SectionInfo pairs a section name with its character description.
type SectionInfo struct {
	Name        Section `json:"name"`
	Description string  `json:"description"`
}

func Sections() []SectionInfo {
	order := []Section{
		SectionIntro, SectionVerse, SectionPreChorus, SectionChorus,
		SectionBridge, SectionBreakdown, SectionOutro,
	}
	infos := make([]SectionInfo, 0, len(order))
	for _, s := range order {
		infos = append(infos, SectionInfo{Name: s, Description: sectionProfiles[s].description})
	}
	return infos
}

// FillNames lists the fill algorithms in catalog order.
func FillNames() []string {
	names := make([]string, 0, len(fillCatalog))
	for _, f := range fillCatalog {
		names = append(names, f.name)
	}
	return names
}

func FillCount() int {
	return len(fillCatalog)
}
