package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		req       PageRequest
		wantData  []int
		wantPages int
	}{
		{"defaults", PageRequest{}, []int{1, 2, 3, 4, 5}, 1},
		{"first page", PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3},
		{"last partial page", PageRequest{Page: 3, PageSize: 2}, []int{5}, 3},
		{"past the end", PageRequest{Page: 9, PageSize: 2}, []int{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.req)
			if len(got.Data) != len(tt.wantData) {
				t.Fatalf("expected %v, got %v", tt.wantData, got.Data)
			}
			for i := range got.Data {
				if got.Data[i] != tt.wantData[i] {
					t.Errorf("item %d: expected %d, got %d", i, tt.wantData[i], got.Data[i])
				}
			}
			if got.TotalItems != 5 {
				t.Errorf("expected 5 total items, got %d", got.TotalItems)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("expected %d pages, got %d", tt.wantPages, got.TotalPages)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate[string](nil, PageRequest{})
	if got.Data == nil {
		t.Error("expected empty slice, got nil")
	}
	if got.Page != 1 || got.PageSize != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", got.Page, got.PageSize)
	}
}
