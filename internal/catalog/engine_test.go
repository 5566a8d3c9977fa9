package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/HerbHall/shirtsearch/internal/testutil"
	pkgcatalog "github.com/HerbHall/shirtsearch/pkg/catalog"
	"github.com/HerbHall/shirtsearch/pkg/models"
)

func pair(c models.Color, s models.Size) testutil.Pair {
	return testutil.Pair{Color: c, Size: s}
}

func threeShirts() []models.Shirt {
	return testutil.Shirts(
		pair(models.ColorRed, models.SizeSmall),
		pair(models.ColorBlack, models.SizeMedium),
		pair(models.ColorBlue, models.SizeLarge),
	)
}

func newTestEngine(t *testing.T, shirts []models.Shirt) *Engine {
	t.Helper()
	e, err := NewEngine(shirts, WithLogger(testutil.Logger(t)))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func embeddedShirts(t *testing.T) []models.Shirt {
	t.Helper()
	shirts, err := pkgcatalog.NewCatalog().Shirts()
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	return shirts
}

func search(t *testing.T, e *Engine, f Filter) *Result {
	t.Helper()
	res, err := e.Search(f)
	if err != nil {
		t.Fatalf("Search(%+v) error = %v", f, err)
	}
	return res
}

type wantCounts struct {
	colors map[models.Color]int
	sizes  map[models.Size]int
}

func checkCounts(t *testing.T, res *Result, want wantCounts) {
	t.Helper()
	for c, n := range want.colors {
		if got := res.ColorCountFor(c); got != n {
			t.Errorf("ColorCountFor(%s) = %d, want %d", c, got, n)
		}
	}
	for s, n := range want.sizes {
		if got := res.SizeCountFor(s); got != n {
			t.Errorf("SizeCountFor(%s) = %d, want %d", s, got, n)
		}
	}
}

func TestSearch_Scenarios(t *testing.T) {
	fourShirts := testutil.Shirts(
		pair(models.ColorRed, models.SizeSmall),
		pair(models.ColorBlack, models.SizeMedium),
		pair(models.ColorBlue, models.SizeLarge),
		pair(models.ColorRed, models.SizeMedium),
	)

	tests := []struct {
		name       string
		shirts     []models.Shirt
		filter     Filter
		wantShirts []int
		want       wantCounts
	}{
		{
			name:   "red or blue, small",
			shirts: threeShirts(),
			filter: Filter{
				Colors: []models.Color{models.ColorRed, models.ColorBlue},
				Sizes:  []models.Size{models.SizeSmall},
			},
			wantShirts: []int{0},
			want: wantCounts{
				// Color counts follow the size restriction only.
				colors: map[models.Color]int{models.ColorRed: 1, models.ColorBlue: 0, models.ColorBlack: 0},
				// Size counts follow the color restriction only.
				sizes: map[models.Size]int{models.SizeSmall: 1, models.SizeMedium: 0, models.SizeLarge: 1},
			},
		},
		{
			name:       "red only",
			shirts:     fourShirts,
			filter:     Filter{Colors: []models.Color{models.ColorRed}},
			wantShirts: []int{0, 3},
			want: wantCounts{
				colors: map[models.Color]int{models.ColorRed: 2, models.ColorBlack: 1, models.ColorBlue: 1},
				sizes:  map[models.Size]int{models.SizeSmall: 1, models.SizeMedium: 1, models.SizeLarge: 0},
			},
		},
		{
			name:       "large only",
			shirts:     threeShirts(),
			filter:     Filter{Sizes: []models.Size{models.SizeLarge}},
			wantShirts: []int{2},
			want: wantCounts{
				colors: map[models.Color]int{models.ColorRed: 0, models.ColorBlack: 0, models.ColorBlue: 1, models.ColorYellow: 0},
				sizes:  map[models.Size]int{models.SizeSmall: 1, models.SizeMedium: 1, models.SizeLarge: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := search(t, newTestEngine(t, tt.shirts), tt.filter)

			want := make([]models.Shirt, 0, len(tt.wantShirts))
			for _, i := range tt.wantShirts {
				want = append(want, tt.shirts[i])
			}
			if !reflect.DeepEqual(res.Shirts, want) {
				t.Errorf("Shirts = %v, want %v", res.Shirts, want)
			}
			checkCounts(t, res, tt.want)
		})
	}
}

func TestSearch_NoFilterReturnsAllShirts(t *testing.T) {
	e := newTestEngine(t, embeddedShirts(t))
	res := search(t, e, Filter{})

	if !reflect.DeepEqual(res.Shirts, e.TotalShirts()) {
		t.Errorf("Search(Filter{}).Shirts differs from TotalShirts()")
	}
	for _, c := range res.ColorCounts {
		if want := e.TotalsByColor()[c.Color.Name()]; c.Count != want {
			t.Errorf("color %s count = %d, want total %d", c.Color, c.Count, want)
		}
	}
	for _, s := range res.SizeCounts {
		if want := e.TotalsBySize()[s.Size.Name()]; s.Count != want {
			t.Errorf("size %s count = %d, want total %d", s.Size, s.Count, want)
		}
	}
}

func TestSearch_FacetTablesComplete(t *testing.T) {
	res := search(t, newTestEngine(t, threeShirts()), Filter{Sizes: []models.Size{models.SizeLarge}})

	colors := models.AllColors()
	if len(res.ColorCounts) != len(colors) {
		t.Fatalf("len(ColorCounts) = %d, want %d", len(res.ColorCounts), len(colors))
	}
	for i, c := range colors {
		if res.ColorCounts[i].Color != c {
			t.Errorf("ColorCounts[%d] = %s, want %s", i, res.ColorCounts[i].Color, c)
		}
		if res.ColorCounts[i].Swatch != c.Swatch() {
			t.Errorf("ColorCounts[%d].Swatch = %q, want %q", i, res.ColorCounts[i].Swatch, c.Swatch())
		}
	}
	sizes := models.AllSizes()
	if len(res.SizeCounts) != len(sizes) {
		t.Fatalf("len(SizeCounts) = %d, want %d", len(res.SizeCounts), len(sizes))
	}
	for i, s := range sizes {
		if res.SizeCounts[i].Size != s {
			t.Errorf("SizeCounts[%d] = %s, want %s", i, res.SizeCounts[i].Size, s)
		}
	}
}

// Applying the whole filter before counting gives different numbers than
// the cross-facet rule; this pins the cross-facet behavior.
func TestSearch_CountsIgnoreOwnDimension(t *testing.T) {
	shirts := testutil.Shirts(
		pair(models.ColorRed, models.SizeSmall),
		pair(models.ColorBlue, models.SizeSmall),
		pair(models.ColorBlue, models.SizeLarge),
		pair(models.ColorWhite, models.SizeSmall),
	)
	e := newTestEngine(t, shirts)
	res := search(t, e, Filter{Colors: []models.Color{models.ColorRed}, Sizes: []models.Size{models.SizeSmall}})

	naiveBlue := 0
	for _, s := range res.Shirts {
		if s.Color == models.ColorBlue {
			naiveBlue++
		}
	}
	if naiveBlue != 0 {
		t.Fatalf("blue shirts in result = %d, want 0", naiveBlue)
	}
	checkCounts(t, res, wantCounts{
		// blue/small is reachable by adding blue to the filter
		colors: map[models.Color]int{models.ColorBlue: 1, models.ColorWhite: 1},
		sizes:  map[models.Size]int{models.SizeLarge: 0, models.SizeSmall: 1},
	})
}

func TestSearch_AllMembersSelected(t *testing.T) {
	shirts := embeddedShirts(t)
	e := newTestEngine(t, shirts)

	restricted := Filter{Sizes: []models.Size{models.SizeMedium}}
	want := search(t, e, restricted)
	got := search(t, e, Filter{Sizes: restricted.Sizes, Colors: models.AllColors()})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("all colors selected = %+v, want %+v", got, want)
	}

	everything := search(t, e, Filter{Sizes: models.AllSizes(), Colors: models.AllColors()})
	if !reflect.DeepEqual(everything.Shirts, shirts) {
		t.Errorf("all members selected returned %d shirts, want the full catalog of %d", len(everything.Shirts), len(shirts))
	}
}

func TestSearch_DuplicateFilterValues(t *testing.T) {
	e := newTestEngine(t, embeddedShirts(t))

	once := search(t, e, Filter{Colors: []models.Color{models.ColorBlue}})
	twice := search(t, e, Filter{Colors: []models.Color{models.ColorBlue, models.ColorBlue}})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("duplicate color = %+v, want %+v", twice, once)
	}
}

func TestSearch_InvalidFilter(t *testing.T) {
	e := newTestEngine(t, threeShirts())

	tests := []struct {
		name   string
		filter Filter
		field  string
		value  string
	}{
		{name: "unknown size", filter: Filter{Sizes: []models.Size{models.SizeSmall, "xl"}}, field: "size", value: "xl"},
		{name: "unknown color", filter: Filter{Colors: []models.Color{"green"}}, field: "color", value: "green"},
		{name: "empty color", filter: Filter{Colors: []models.Color{""}}, field: "color", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Search(tt.filter)
			if res != nil {
				t.Errorf("Search() result = %+v, want nil", res)
			}
			if !errors.Is(err, ErrInvalidFilter) {
				t.Fatalf("Search() error = %v, want %v", err, ErrInvalidFilter)
			}

			var fe *InvalidFilterError
			if !errors.As(err, &fe) {
				t.Fatalf("Search() error type = %T, want *InvalidFilterError", err)
			}
			if fe.Field != tt.field || fe.Value != tt.value {
				t.Errorf("InvalidFilterError = %s=%q, want %s=%q", fe.Field, fe.Value, tt.field, tt.value)
			}
		})
	}
}

func TestNewEngine_InvalidItem(t *testing.T) {
	shirts := threeShirts()
	shirts = append(shirts, testutil.NewShirt(testutil.WithID("bad"), func(s *models.Shirt) { s.Color = "green" }))

	e, err := NewEngine(shirts)
	if e != nil {
		t.Error("NewEngine() engine != nil on invalid item")
	}
	if !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("NewEngine() error = %v, want %v", err, ErrInvalidItem)
	}

	var ie *InvalidItemError
	if !errors.As(err, &ie) {
		t.Fatalf("NewEngine() error type = %T, want *InvalidItemError", err)
	}
	if ie.Index != 3 || ie.ShirtID != "bad" || ie.Field != "color" {
		t.Errorf("InvalidItemError = %+v, want index 3, id bad, field color", ie)
	}
	if !strings.Contains(ie.Error(), `"green"`) {
		t.Errorf("Error() = %q, want it to quote the value", ie.Error())
	}

	_, err = NewEngine([]models.Shirt{testutil.NewShirt(func(s *models.Shirt) { s.Size = "" })})
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("NewEngine(empty size) error = %v, want %v", err, ErrInvalidItem)
	}
}

func TestEngine_EmptyCatalog(t *testing.T) {
	tests := []struct {
		name   string
		shirts []models.Shirt
	}{
		{name: "nil", shirts: nil},
		{name: "empty", shirts: []models.Shirt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.shirts)

			total := e.TotalShirts()
			if total == nil || len(total) != 0 {
				t.Errorf("TotalShirts() = %#v, want empty non-nil slice", total)
			}
			all := search(t, e, Filter{})
			if !reflect.DeepEqual(all.Shirts, total) {
				t.Errorf("Search(Filter{}).Shirts = %#v, want %#v", all.Shirts, total)
			}

			for _, c := range models.AllColors() {
				if n, ok := e.TotalsByColor()[c.Name()]; !ok || n != 0 {
					t.Errorf("TotalsByColor()[%s] = %d, %v; want 0, true", c.Name(), n, ok)
				}
			}
			if got := len(e.TotalsBySize()); got != len(models.AllSizes()) {
				t.Errorf("len(TotalsBySize()) = %d, want %d", got, len(models.AllSizes()))
			}

			res := search(t, e, Filter{Colors: []models.Color{models.ColorRed}})
			if len(res.Shirts) != 0 {
				t.Errorf("len(Shirts) = %d, want 0", len(res.Shirts))
			}
			if len(res.ColorCounts) != len(models.AllColors()) {
				t.Errorf("len(ColorCounts) = %d, want %d", len(res.ColorCounts), len(models.AllColors()))
			}
			if got := res.ColorCountFor(models.ColorRed); got != 0 {
				t.Errorf("ColorCountFor(red) = %d, want 0", got)
			}
		})
	}
}

func TestEngine_Totals(t *testing.T) {
	shirts := threeShirts()
	e := newTestEngine(t, shirts)

	if got := e.TotalShirts(); !reflect.DeepEqual(got, shirts) {
		t.Errorf("TotalShirts() = %v, want %v", got, shirts)
	}
	wantColor := map[string]int{"Red": 1, "Black": 1, "Blue": 1, "White": 0, "Yellow": 0}
	if got := e.TotalsByColor(); !reflect.DeepEqual(got, wantColor) {
		t.Errorf("TotalsByColor() = %v, want %v", got, wantColor)
	}
	wantSize := map[string]int{"Small": 1, "Medium": 1, "Large": 1}
	if got := e.TotalsBySize(); !reflect.DeepEqual(got, wantSize) {
		t.Errorf("TotalsBySize() = %v, want %v", got, wantSize)
	}
}

func TestEngine_TotalsSumToCatalogSize(t *testing.T) {
	e := newTestEngine(t, embeddedShirts(t))

	sum := func(m map[string]int) int {
		n := 0
		for _, v := range m {
			n += v
		}
		return n
	}
	n := len(e.TotalShirts())
	if n != 16 {
		t.Errorf("len(TotalShirts()) = %d, want 16", n)
	}
	if got := sum(e.TotalsByColor()); got != n {
		t.Errorf("sum(TotalsByColor()) = %d, want %d", got, n)
	}
	if got := sum(e.TotalsBySize()); got != n {
		t.Errorf("sum(TotalsBySize()) = %d, want %d", got, n)
	}
}

func TestEngine_DoesNotAliasCallerData(t *testing.T) {
	shirts := threeShirts()
	e := newTestEngine(t, shirts)

	shirts[0].Color = models.ColorYellow
	e.TotalShirts()[1].Size = models.SizeLarge
	e.TotalsByColor()["Red"] = 99

	first := search(t, e, Filter{})
	first.ColorCounts[0].Count = 42
	first.Shirts[0].Name = "mutated"

	second := search(t, e, Filter{})
	if second.Shirts[0].Color != models.ColorRed {
		t.Errorf("Shirts[0].Color = %s, want red", second.Shirts[0].Color)
	}
	if second.Shirts[0].Name == "mutated" {
		t.Error("Shirts[0].Name shares storage with an earlier result")
	}
	if second.Shirts[1].Size != models.SizeMedium {
		t.Errorf("Shirts[1].Size = %s, want medium", second.Shirts[1].Size)
	}
	if got := second.ColorCountFor(models.ColorRed); got != 1 {
		t.Errorf("ColorCountFor(red) = %d, want 1", got)
	}
	if got := e.TotalsByColor()["Red"]; got != 1 {
		t.Errorf("TotalsByColor()[Red] = %d, want 1", got)
	}
}

func TestEngine_NilMetrics(t *testing.T) {
	e, err := NewEngine(threeShirts(), WithMetrics(nil), WithLogger(nil))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	if _, err := e.Search(Filter{Sizes: []models.Size{"xxl"}}); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("Search(xxl) error = %v, want %v", err, ErrInvalidFilter)
	}
	if _, err := e.Search(Filter{}); err != nil {
		t.Errorf("Search() error = %v", err)
	}
}
