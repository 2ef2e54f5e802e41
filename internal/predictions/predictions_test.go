package predictions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projection-engine/internal/model"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.Equal(t, 4, s.Len())

	p, ok := s.Lookup("Base Case 2030")
	require.True(t, ok)
	assert.Equal(t, model.Prediction{Name: "Base Case 2030", Year: 2030, TargetPrice: 1000000}, p)
	assert.Equal(t, "Conservative 2030", s.Names()[0])
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		path  string
		names []string
	}{
		{"testdata/predictions.csv", []string{"Conservative 2030", "Base Case 2030", "Bull Case 2035", "Long Run 2045"}},
		{"testdata/predictions.yaml", []string{"Halving Cycle", "Base Case 2030"}},
		{"testdata/predictions.json", []string{"Base Case 2030", "Bull Case 2035"}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			s, err := LoadFile(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.names, s.Names())

			p, ok := s.Lookup(tc.names[0])
			require.True(t, ok)
			assert.Positive(t, p.TargetPrice)
			assert.Greater(t, p.Year, 2000)
		})
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile("testdata/predictions.xlsx")
	require.Error(t, err)
}

func TestLoadJSONArray(t *testing.T) {
	s, err := LoadJSON(strings.NewReader(`[{"name":"A","year":2030,"target_price":1}]`))
	require.NoError(t, err)
	assert.Equal(t, []model.Prediction{{Name: "A", Year: 2030, TargetPrice: 1}}, s.All())
}

func TestNewStoreRejects(t *testing.T) {
	tests := []struct {
		name  string
		preds []model.Prediction
	}{
		{"duplicate", []model.Prediction{{Name: "A", Year: 2030, TargetPrice: 1}, {Name: " A ", Year: 2031, TargetPrice: 2}}},
		{"empty name", []model.Prediction{{Name: "  ", Year: 2030, TargetPrice: 1}}},
		{"zero price", []model.Prediction{{Name: "A", Year: 2030}}},
		{"negative price", []model.Prediction{{Name: "A", Year: 2030, TargetPrice: -5}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStore(tc.preds)
			require.Error(t, err)
		})
	}
}

func TestLookupMissing(t *testing.T) {
	_, ok := Default().Lookup("Moon 2100")
	assert.False(t, ok)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predictions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Remote","year":2032,"target_price":750000}]`))
	}))
	defer srv.Close()

	s, err := Load(context.Background(), "testdata/predictions.csv", srv.URL+"/predictions")
	require.NoError(t, err)
	p, ok := s.Lookup("Remote")
	require.True(t, ok)
	assert.Equal(t, 2032, p.Year)

	_, err = Fetch(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	s, err := Load(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), s.Names())
}
