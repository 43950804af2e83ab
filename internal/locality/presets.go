package locality

// Patterns for the administrative hierarchy. Cities and counties end in 市 or
// 縣, townships and districts in 鄉, 鎮, 市 or 區, villages in 村 or 里.
const (
	// VillagePattern matches a full city + district + village string.
	VillagePattern = `^(.{2,}?[市縣])(.{1,}?[鄉鎮市區])(.{1,}?[村里])$`
	// DistrictPattern matches a combined city + district string.
	DistrictPattern = `^(.+?[市縣])(.+?[鄉鎮市區])$`
)

// FullWidthSpace is the ideographic space found between characters in the
// education source.
const FullWidthSpace = "\u3000"

// BoundaryAfter repairs 前鎮區, whose 鎮 is taken as the district suffix,
// leaving 區 at the front of the village.
var BoundaryAfter = []Replacement{
	{Old: "前鎮-區", New: "前鎮區-"},
}

// EducationBefore strips full-width spaces and collapses the numbered halves
// of 鳳山區 and 三民區 back to one district.
var EducationBefore = []Replacement{
	{Old: FullWidthSpace, New: ""},
	{Old: "鳳山一", New: "鳳山區"},
	{Old: "鳳山二", New: "鳳山區"},
	{Old: "三民一", New: "三民區"},
	{Old: "三民二", New: "三民區"},
}

// ResidualMarkers are the summary and catch-all categories in the CSV sources.
var ResidualMarkers = []string{"其他", "合計"}
