package locality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatcher(t *testing.T, pattern string, before, after []Replacement) *Matcher {
	t.Helper()

	m, err := NewMatcher(pattern, before, after)
	require.NoError(t, err)

	return m
}

func boundaryMatcher(t *testing.T) *Matcher {
	return mustMatcher(t, VillagePattern, nil, BoundaryAfter)
}

func incomeMatcher(t *testing.T) *Matcher {
	return mustMatcher(t, DistrictPattern, nil, nil)
}

func educationMatcher(t *testing.T) *Matcher {
	return mustMatcher(t, DistrictPattern, EducationBefore, nil)
}

func TestBoundaryKey(t *testing.T) {
	m := boundaryMatcher(t)

	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		// Plain three-tier split
		{"臺北市大安區龍門里", "臺北市-大安區-龍門里", true},
		{"新北市板橋區留侯里", "新北市-板橋區-留侯里", true},
		{"宜蘭縣頭城鎮城東里", "宜蘭縣-頭城鎮-城東里", true},
		{"苗栗縣頭份市田寮里", "苗栗縣-頭份市-田寮里", true},
		{"南投縣仁愛鄉發祥村", "南投縣-仁愛鄉-發祥村", true},

		// 前鎮區 is first split at 鎮 and repaired after joining
		{"高雄市前鎮區草衙里", "高雄市-前鎮區-草衙里", true},
		{"高雄市前鎮區中興里", "高雄市-前鎮區-中興里", true},

		// Summary rows without a single village
		{"嘉義市東區各里平地、山地原住民", "", false},
		{"臺北市大安區", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, ok := m.Key(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestIncomeKey(t *testing.T) {
	m := incomeMatcher(t)

	tests := []struct {
		cityDistrict string
		village      string
		expected     string
		ok           bool
	}{
		{"高雄市前鎮區", "中興里", "高雄市-前鎮區-中興里", true},
		{"臺北市大安區", "龍門里", "臺北市-大安區-龍門里", true},
		{"彰化縣員林市", "三橋里", "彰化縣-員林市-三橋里", true},
		{"連江縣南竿鄉", "介壽村", "連江縣-南竿鄉-介壽村", true},
		{"臺北市", "龍門里", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.cityDistrict+tt.village, func(t *testing.T) {
			key, ok := m.Key(tt.cityDistrict, tt.village)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestEducationKey(t *testing.T) {
	m := educationMatcher(t)

	tests := []struct {
		cityDistrict string
		village      string
		expected     string
	}{
		{"臺北市　大安區", "龍門里", "臺北市-大安區-龍門里"},
		{"高雄市　鳳山一", "文山里", "高雄市-鳳山區-文山里"},
		{"高雄市　鳳山二", "文英里", "高雄市-鳳山區-文英里"},
		{"高雄市三民一", "鼎泰里", "高雄市-三民區-鼎泰里"},
		{"高雄市三民二", "安生里", "高雄市-三民區-安生里"},
		{"高雄市　　前鎮區", "中興里", "高雄市-前鎮區-中興里"},
	}

	for _, tt := range tests {
		t.Run(tt.cityDistrict+tt.village, func(t *testing.T) {
			key, ok := m.Key(tt.cityDistrict, tt.village)
			require.True(t, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestMatcher_Split(t *testing.T) {
	parts, ok := boundaryMatcher(t).Split("臺北市大安區龍門里")
	require.True(t, ok)
	assert.Equal(t, []string{"臺北市", "大安區", "龍門里"}, parts)

	parts, ok = incomeMatcher(t).Split("臺北市")
	assert.False(t, ok)
	assert.Nil(t, parts)
}

func TestMatcher_ReplacementOrder(t *testing.T) {
	m, err := NewMatcher(`^(.+?[市縣])(.+?[鄉鎮市區])$`, []Replacement{
		{Old: "A", New: "B"},
		{Old: "B", New: "區"},
		{Old: "", New: "ignored"},
	}, nil)
	require.NoError(t, err)

	key, ok := m.Key("臺中市北A", "中和里")
	require.True(t, ok)
	assert.Equal(t, "臺中市-北區-中和里", key)
}

func TestNewMatcher_Errors(t *testing.T) {
	_, err := NewMatcher(`(`, nil, nil)
	require.Error(t, err)

	_, err = NewMatcher(`^abc$`, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no capture groups")
}

func TestResidual(t *testing.T) {
	r := DefaultResidual()

	tests := []struct {
		cityDistrict string
		village      string
		expected     bool
	}{
		{"臺北市其他", "龍門里", true},
		{"臺北市大安區", "其他", true},
		{"臺北市大安區", "合計", true},
		{"臺北市大安區", "龍門里", false},
		{"臺北市大安區", "其他里", false},
	}

	for _, tt := range tests {
		t.Run(tt.cityDistrict+tt.village, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Match(tt.cityDistrict, tt.village))
		})
	}
}
