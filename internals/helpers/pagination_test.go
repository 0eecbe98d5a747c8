package helper

import "testing"

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"date":       "attendance_date",
		"created_at": "attendance_created_at",
	}

	cases := []struct {
		name    string
		p       Params
		want    string
		wantErr bool
	}{
		{"whitelisted asc", Params{SortBy: "date", SortOrder: "asc"}, "attendance_date ASC", false},
		{"whitelisted desc", Params{SortBy: "created_at", SortOrder: "desc"}, "attendance_created_at DESC", false},
		{"unknown key fallback default", Params{SortBy: "user_password_hash; DROP TABLE users", SortOrder: "asc"}, "attendance_date ASC", false},
		{"empty key pakai default", Params{SortOrder: "desc"}, "attendance_date DESC", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.p.SafeOrderClause(allowed, "date")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if meta.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasPrev || !meta.HasNext {
		t.Errorf("page 2/5 harus punya prev & next: %+v", meta)
	}

	last := BuildMeta(101, Params{Page: 5, PerPage: 25})
	if last.HasNext {
		t.Error("halaman terakhir tidak boleh HasNext")
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext {
		t.Errorf("total 0: %+v", empty)
	}
}
