package region

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFindByCode(t *testing.T) {
	m := NewMapper()

	t.Run("district", func(t *testing.T) {
		match, ok := m.FindByCode("41135")
		require.True(t, ok)
		assert.Equal(t, "41", match.Region.Code)
		require.NotNil(t, match.SubRegion)
		assert.Equal(t, "41130", match.SubRegion.Code)
		assert.Equal(t, "성남시", match.SubRegion.Name)
		require.NotNil(t, match.District)
		assert.Equal(t, "분당구", match.District.Name)
		assert.Equal(t, "41135", match.Code())
	})

	t.Run("sub-region", func(t *testing.T) {
		match, ok := m.FindByCode("11680")
		require.True(t, ok)
		assert.Equal(t, "서울특별시", match.Region.Name)
		assert.Equal(t, "강남구", match.SubRegion.Name)
		assert.Nil(t, match.District)
	})

	t.Run("top level", func(t *testing.T) {
		match, ok := m.FindByCode("50")
		require.True(t, ok)
		assert.Nil(t, match.SubRegion)
		assert.Equal(t, "50", match.Code())
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := m.FindByCode("99999")
		assert.False(t, ok)
		_, ok = m.FindByCode("")
		assert.False(t, ok)
	})
}

func TestMapFreeText(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		name      string
		r1, r2    string
		wantCode  string
		wantDepth int
		wantOK    bool
	}{
		{"district", "경기도", "성남시 분당구", "41135", DepthDistrict, true},
		{"short province prefix", "경기", "성남시 분당구", "41135", DepthDistrict, true},
		{"short city token", "경기도", "성남 분당", "41135", DepthDistrict, true},
		{"metro gu", "서울특별시", "강남구", "11680", DepthSubRegion, true},
		{"same gu name resolved under parent", "부산광역시", "중구", "26110", DepthSubRegion, true},
		{"unknown district falls back to sub-region", "경기도", "성남시 없는구", "41130", DepthSubRegion, true},
		{"unknown sub-region falls back to region", "경기도", "없는시", "41", DepthRegion, true},
		{"region only", "제주특별자치도", "", "50", DepthRegion, true},
		{"legacy province name", "강원도", "춘천시", "51110", DepthSubRegion, true},
		{"whitespace", "  서울  ", "  마포구 ", "11440", DepthSubRegion, true},
		{"unknown region", "화성", "", "", 0, false},
		{"empty", "", "강남구", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.MapFreeText(tt.r1, tt.r2)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantDepth, got.Depth)
		})
	}
}

func TestMapFreeText_RoundTrip(t *testing.T) {
	m := NewMapper()
	for _, r := range m.Tree() {
		for _, s := range r.Children {
			got, ok := m.MapFreeText(r.Name, s.Name)
			require.True(t, ok, s.Code)
			assert.Equal(t, s.Code, got.Code)

			match, ok := m.FindByCode(got.Code)
			require.True(t, ok)
			assert.Equal(t, r.Code, match.Region.Code)
			assert.Equal(t, s.Name, match.SubRegion.Name)

			for _, d := range s.Children {
				got, ok := m.MapFreeText(r.Name, s.Name+" "+d.Name)
				require.True(t, ok, d.Code)
				assert.Equal(t, d.Code, got.Code)
			}
		}
	}
}

func TestTree_CodesSharePrefix(t *testing.T) {
	m := NewMapper()
	codes := m.TopLevelCodes()
	assert.Len(t, codes, 17)

	seen := map[string]bool{}
	for _, r := range m.Tree() {
		assert.Len(t, r.Code, 2)
		for _, s := range r.Children {
			assert.Len(t, s.Code, 5)
			assert.Equal(t, r.Code, Prefix(s.Code))
			assert.False(t, seen[s.Code], "duplicate %s", s.Code)
			seen[s.Code] = true
			for _, d := range s.Children {
				assert.Equal(t, r.Code, Prefix(d.Code))
				assert.False(t, seen[d.Code], "duplicate %s", d.Code)
				seen[d.Code] = true
			}
		}
	}
}

func TestFindByCode_Pure(t *testing.T) {
	m := NewMapper()
	a, _ := m.FindByCode("41135")
	b, _ := m.FindByCode("41135")
	assert.Equal(t, a, b)
}

type mockGeocoder struct {
	mock.Mock
}

func (g *mockGeocoder) RegionAt(ctx context.Context, lat, lng float64) (string, string, error) {
	args := g.Called(ctx, lat, lng)
	return args.String(0), args.String(1), args.Error(2)
}

func TestLocate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		g := new(mockGeocoder)
		g.On("RegionAt", ctx, 37.38, 127.12).Return("경기도", "성남시 분당구", nil)

		got, err := NewLocator(NewMapper(), g).Locate(ctx, 37.38, 127.12)
		require.NoError(t, err)
		assert.Equal(t, "41135", got.Code)
		g.AssertExpectations(t)
	})

	t.Run("geocoder error", func(t *testing.T) {
		g := new(mockGeocoder)
		g.On("RegionAt", ctx, 0.0, 0.0).Return("", "", errors.New("boom"))

		_, err := NewLocator(NewMapper(), g).Locate(ctx, 0, 0)
		assert.Error(t, err)
	})

	t.Run("unmapped names", func(t *testing.T) {
		g := new(mockGeocoder)
		g.On("RegionAt", ctx, 1.0, 1.0).Return("Tokyo", "", nil)

		_, err := NewLocator(NewMapper(), g).Locate(ctx, 1, 1)
		assert.ErrorIs(t, err, ErrUnknownCode)
	})
}
