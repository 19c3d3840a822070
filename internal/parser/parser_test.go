package parser

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/takak2166/arc2bookmarks/internal/errors"
	"github.com/takak2166/arc2bookmarks/internal/models"
)

var fixedNow = time.Unix(1710000000, 0)

func fixedClock() time.Time {
	return fixedNow
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []models.Bookmark
	}{
		{
			name:  "Single sidebar bookmark",
			input: `{"sidebarSyncState":{"items":["A",{"data":{"tab":{"savedTitle":"Ex","savedURL":"http://ex.com"}},"createdAt":1000}]}}`,
			expected: []models.Bookmark{
				{Title: "Ex", URL: "http://ex.com", AddDate: 1000},
			},
		},
		{
			name: "Both root containers are concatenated in order",
			input: `{
				"firebaseSyncState":{"syncData":{"items":["F",{"data":{"tab":{"savedTitle":"Fire","savedURL":"http://fire.example"}},"createdAt":2}]}},
				"sidebarSyncState":{"items":["S",{"data":{"tab":{"savedTitle":"Side","savedURL":"http://side.example"}},"createdAt":1}]}
			}`,
			expected: []models.Bookmark{
				{Title: "Side", URL: "http://side.example", AddDate: 1},
				{Title: "Fire", URL: "http://fire.example", AddDate: 2},
			},
		},
		{
			name:     "No root containers",
			input:    `{"version":2}`,
			expected: nil,
		},
		{
			name:     "Top level array",
			input:    `[1,2,3]`,
			expected: nil,
		},
		{
			name:     "Items is not an array",
			input:    `{"sidebarSyncState":{"items":{"A":{}}}}`,
			expected: nil,
		},
		{
			name:     "Sync data without items",
			input:    `{"firebaseSyncState":{"syncData":{}}}`,
			expected: nil,
		},
	}

	p := New(WithClock(fixedClock))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Parse() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestParseInvalidJSON(t *testing.T) {
	p := New()
	result, err := p.Parse([]byte(`{"sidebarSyncState":`))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInvalidJSON) {
		t.Errorf("Expected INVALID_JSON, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected no bookmarks, got %v", result)
	}
}

func TestExtractItems(t *testing.T) {
	tests := []struct {
		name     string
		items    string
		expected []models.Bookmark
	}{
		{
			name:     "Empty sequence",
			items:    `[]`,
			expected: nil,
		},
		{
			name:  "Wrapped value",
			items: `["A",{"value":{"data":{"tab":{"savedTitle":"Wrapped","savedURL":"http://w.example"}},"createdAt":5}}]`,
			expected: []models.Bookmark{
				{Title: "Wrapped", URL: "http://w.example", AddDate: 5},
			},
		},
		{
			name:  "Empty title falls back to url",
			items: `["A",{"data":{"tab":{"savedTitle":"","savedURL":"http://notitle.example"}},"createdAt":7}]`,
			expected: []models.Bookmark{
				{Title: "http://notitle.example", URL: "http://notitle.example", AddDate: 7},
			},
		},
		{
			name:  "Missing title falls back to url",
			items: `["A",{"data":{"tab":{"savedURL":"http://notitle.example"}},"createdAt":7}]`,
			expected: []models.Bookmark{
				{Title: "http://notitle.example", URL: "http://notitle.example", AddDate: 7},
			},
		},
		{
			name:     "Empty url is discarded",
			items:    `["A",{"data":{"tab":{"savedTitle":"No URL","savedURL":""}},"createdAt":7}]`,
			expected: nil,
		},
		{
			name:     "Missing url is discarded",
			items:    `["A",{"data":{"tab":{"savedTitle":"No URL"}}}]`,
			expected: nil,
		},
		{
			name:  "Trailing unpaired id is ignored",
			items: `["A",{"data":{"tab":{"savedTitle":"A","savedURL":"http://a.example"}},"createdAt":1},"B"]`,
			expected: []models.Bookmark{
				{Title: "A", URL: "http://a.example", AddDate: 1},
			},
		},
		{
			name: "Children are emitted after their parent",
			items: `[
				"folder",{"childrenIds":["c1","c2"],"createdAt":1},
				"c1",{"data":{"tab":{"savedTitle":"One","savedURL":"http://1.example"}},"createdAt":11},
				"c2",{"data":{"tab":{"savedTitle":"Two","savedURL":"http://2.example"}},"createdAt":12}
			]`,
			expected: []models.Bookmark{
				{Title: "One", URL: "http://1.example", AddDate: 11},
				{Title: "Two", URL: "http://2.example", AddDate: 12},
			},
		},
		{
			name: "Child listed before parent is emitted at first visit",
			items: `[
				"c1",{"data":{"tab":{"savedTitle":"One","savedURL":"http://1.example"}},"createdAt":11},
				"folder",{"childrenIds":["c2","c1"]},
				"c2",{"data":{"tab":{"savedTitle":"Two","savedURL":"http://2.example"}},"createdAt":12}
			]`,
			expected: []models.Bookmark{
				{Title: "One", URL: "http://1.example", AddDate: 11},
				{Title: "Two", URL: "http://2.example", AddDate: 12},
			},
		},
		{
			name: "Nested folders are walked in pre-order",
			items: `[
				"root",{"childrenIds":["sub","leaf2"],"data":{"tab":{"savedTitle":"Root","savedURL":"http://root.example"}},"createdAt":1},
				"leaf2",{"data":{"tab":{"savedTitle":"Leaf2","savedURL":"http://leaf2.example"}},"createdAt":4},
				"sub",{"value":{"childrenIds":["leaf1"]}},
				"leaf1",{"data":{"tab":{"savedTitle":"Leaf1","savedURL":"http://leaf1.example"}},"createdAt":3}
			]`,
			expected: []models.Bookmark{
				{Title: "Root", URL: "http://root.example", AddDate: 1},
				{Title: "Leaf1", URL: "http://leaf1.example", AddDate: 3},
				{Title: "Leaf2", URL: "http://leaf2.example", AddDate: 4},
			},
		},
		{
			name: "Unresolved child id contributes nothing",
			items: `[
				"folder",{"childrenIds":["missing","c1"]},
				"c1",{"data":{"tab":{"savedTitle":"One","savedURL":"http://1.example"}},"createdAt":11}
			]`,
			expected: []models.Bookmark{
				{Title: "One", URL: "http://1.example", AddDate: 11},
			},
		},
		{
			name: "Cycle stops descending",
			items: `[
				"a",{"childrenIds":["b"],"data":{"tab":{"savedTitle":"A","savedURL":"http://a.example"}},"createdAt":1},
				"b",{"childrenIds":["a"],"data":{"tab":{"savedTitle":"B","savedURL":"http://b.example"}},"createdAt":2}
			]`,
			expected: []models.Bookmark{
				{Title: "A", URL: "http://a.example", AddDate: 1},
				{Title: "B", URL: "http://b.example", AddDate: 2},
			},
		},
		{
			name:  "Self reference stops descending",
			items: `["a",{"childrenIds":["a"],"data":{"tab":{"savedTitle":"A","savedURL":"http://a.example"}},"createdAt":1}]`,
			expected: []models.Bookmark{
				{Title: "A", URL: "http://a.example", AddDate: 1},
			},
		},
		{
			name: "Shared child is emitted once",
			items: `[
				"f1",{"childrenIds":["c"]},
				"f2",{"childrenIds":["c"]},
				"c",{"data":{"tab":{"savedTitle":"C","savedURL":"http://c.example"}},"createdAt":3}
			]`,
			expected: []models.Bookmark{
				{Title: "C", URL: "http://c.example", AddDate: 3},
			},
		},
		{
			name: "Numeric and string ids are distinct",
			items: `[
				"folder",{"childrenIds":[1]},
				"1",{"data":{"tab":{"savedTitle":"String","savedURL":"http://s.example"}},"createdAt":2},
				1,{"data":{"tab":{"savedTitle":"Number","savedURL":"http://n.example"}},"createdAt":1}
			]`,
			expected: []models.Bookmark{
				{Title: "Number", URL: "http://n.example", AddDate: 1},
				{Title: "String", URL: "http://s.example", AddDate: 2},
			},
		},
		{
			name: "Duplicate id resolves to first occurrence",
			items: `[
				"folder",{"childrenIds":["dup"]},
				"dup",{"data":{"tab":{"savedTitle":"First","savedURL":"http://first.example"}},"createdAt":1},
				"dup",{"data":{"tab":{"savedTitle":"Second","savedURL":"http://second.example"}},"createdAt":2}
			]`,
			expected: []models.Bookmark{
				{Title: "First", URL: "http://first.example", AddDate: 1},
				{Title: "Second", URL: "http://second.example", AddDate: 2},
			},
		},
		{
			name:     "Non-object values are skipped",
			items:    `["a",null,"b","text","c",{"value":null},"d",{"data":{"tab":null}}]`,
			expected: nil,
		},
		{
			name:  "Non-array childrenIds is ignored",
			items: `["a",{"childrenIds":"b","data":{"tab":{"savedURL":"http://a.example"}},"createdAt":1},"b",{}]`,
			expected: []models.Bookmark{
				{Title: "http://a.example", URL: "http://a.example", AddDate: 1},
			},
		},
	}

	p := New(WithClock(fixedClock))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.ExtractItems(gjson.Parse(tt.items))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ExtractItems() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestExtractItemsURLNeverEmpty(t *testing.T) {
	items := `[
		"a",{"data":{"tab":{"savedTitle":"A","savedURL":""}}},
		"b",{"data":{"tab":{"savedTitle":"B","savedURL":"http://b.example"}}},
		"c",{"value":{"data":{"tab":{"savedTitle":"C"}}}},
		"d",{"childrenIds":["a","b","c"]}
	]`

	p := New(WithClock(fixedClock))
	for _, b := range p.ExtractItems(gjson.Parse(items)) {
		if b.URL == "" {
			t.Errorf("Expected non-empty url, got %+v", b)
		}
	}
}

func TestParseConcatenation(t *testing.T) {
	sidebar := `["s1",{"childrenIds":["s2"],"data":{"tab":{"savedTitle":"S1","savedURL":"http://s1.example"}},"createdAt":1},"s2",{"data":{"tab":{"savedURL":"http://s2.example"}},"createdAt":2}]`
	firebase := `["f1",{"value":{"data":{"tab":{"savedTitle":"F1","savedURL":"http://f1.example"}}}}]`

	p := New(WithClock(fixedClock))

	sidebarOnly, err := p.Parse([]byte(`{"sidebarSyncState":{"items":` + sidebar + `}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	firebaseOnly, err := p.Parse([]byte(`{"firebaseSyncState":{"syncData":{"items":` + firebase + `}}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	both, err := p.Parse([]byte(`{"sidebarSyncState":{"items":` + sidebar + `},"firebaseSyncState":{"syncData":{"items":` + firebase + `}}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	expected := append(append([]models.Bookmark{}, sidebarOnly...), firebaseOnly...)
	if !reflect.DeepEqual(both, expected) {
		t.Errorf("Parse() = %v, want %v", both, expected)
	}
	if len(both) != 3 {
		t.Errorf("Expected 3 bookmarks, got %d", len(both))
	}
}

func TestParseDeepChain(t *testing.T) {
	// a long parent chain must not blow up and must keep pre-order
	items := "["
	const depth = 5000
	for i := 0; i < depth; i++ {
		if i > 0 {
			items += ","
		}
		child := ""
		if i+1 < depth {
			child = `"childrenIds":[` + strconv.Itoa(i+1) + `],`
		}
		items += strconv.Itoa(i) + `,{` + child + `"data":{"tab":{"savedURL":"http://x.example/` + strconv.Itoa(i) + `"}},"createdAt":` + strconv.Itoa(i) + `}`
	}
	items += "]"

	result := New(WithClock(fixedClock)).ExtractItems(gjson.Parse(items))
	if len(result) != depth {
		t.Fatalf("Expected %d bookmarks, got %d", depth, len(result))
	}
	for i, b := range result {
		if b.AddDate != int64(i) {
			t.Fatalf("Bookmark %d has add_date %d", i, b.AddDate)
		}
	}
}
