package taskstore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/deck/text"
)

func makeRecords(prefix string, n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i].Summary = text.New(fmt.Sprintf("%s%d", prefix, i), SummaryBytes)
		recs[i].Due = text.New("due"+strconv.Itoa(i), DueBytes)
	}
	return recs
}

func summaries(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		if !r.Valid {
			out[i] = "-"
			continue
		}
		out[i] = r.Summary.String()
	}
	return out
}

func TestReplaceAllClampsToCapacity(t *testing.T) {
	for _, n := range []int{0, 1, 3, Capacity, Capacity + 1, 25} {
		s := New()
		count, _ := s.ReplaceAll(makeRecords("t", n))
		want := n
		if want > Capacity {
			want = Capacity
		}
		if count != want || s.Count() != want {
			t.Fatalf("n=%d: count=%d Count()=%d, want %d", n, count, s.Count(), want)
		}

		all := make([]Record, Capacity)
		got := s.Records(all)
		if got != want {
			t.Fatalf("n=%d: Records copied %d", n, got)
		}
		for i := 0; i < got; i++ {
			if !all[i].Valid || all[i].Summary.String() != "t"+strconv.Itoa(i) {
				t.Fatalf("n=%d: slot %d = %+v", n, i, all[i])
			}
		}
	}
}

func TestReplaceAllClearsStaleSlots(t *testing.T) {
	s := New()
	s.ReplaceAll(makeRecords("old", 8))
	s.ReplaceAll(makeRecords("new", 2))

	if s.records[2].Valid || !s.records[2].Summary.Empty() {
		t.Fatalf("slot 2 not cleared: %+v", s.records[2])
	}
	for i := 2; i < Capacity; i++ {
		if s.records[i].Valid {
			t.Fatalf("slot %d still valid", i)
		}
	}
}

func TestReplaceAllBumpsGeneration(t *testing.T) {
	s := New()
	_, g1 := s.ReplaceAll(nil)
	_, g2 := s.ReplaceAll(makeRecords("x", 1))
	if g2 <= g1 || s.Gen() != g2 {
		t.Fatalf("generations %d then %d (Gen()=%d)", g1, g2, s.Gen())
	}
}

func TestWindowStatic(t *testing.T) {
	for count := 0; count <= 3; count++ {
		s := New()
		s.ReplaceAll(makeRecords("t", count))
		for _, offset := range []int{0, 1, 2, 7} {
			dst := make([]Record, 3)
			v := s.Window(offset, dst)
			if v.Offset != 0 || v.Count != count {
				t.Fatalf("count=%d offset=%d: view %+v", count, offset, v)
			}
			want := []string{"-", "-", "-"}
			for i := 0; i < count; i++ {
				want[i] = "t" + strconv.Itoa(i)
			}
			if diff := cmp.Diff(want, summaries(dst)); diff != "" {
				t.Fatalf("count=%d offset=%d (-want +got):\n%s", count, offset, diff)
			}
		}
	}
}

func TestWindowCircular(t *testing.T) {
	s := New()
	s.ReplaceAll(makeRecords("t", 5))

	tests := []struct {
		offset int
		want   []string
	}{
		{offset: 0, want: []string{"t0", "t1", "t2"}},
		{offset: 3, want: []string{"t3", "t4", "t0"}},
		{offset: 4, want: []string{"t4", "t0", "t1"}},
		{offset: 5, want: []string{"t0", "t1", "t2"}},
		{offset: 12, want: []string{"t2", "t3", "t4"}},
		{offset: -1, want: []string{"t0", "t1", "t2"}},
	}
	for _, tt := range tests {
		dst := make([]Record, 3)
		s.Window(tt.offset, dst)
		if diff := cmp.Diff(tt.want, summaries(dst)); diff != "" {
			t.Fatalf("offset=%d (-want +got):\n%s", tt.offset, diff)
		}
	}
}

func TestWindowFuncSeesLockedCount(t *testing.T) {
	s := New()
	s.ReplaceAll(makeRecords("t", 4))
	var seen int
	dst := make([]Record, 3)
	v := s.WindowFunc(func(count int, gen uint64) int {
		seen = count
		return 9
	}, dst)
	if seen != 4 || v.Offset != 1 {
		t.Fatalf("seen=%d view=%+v", seen, v)
	}
}

// Each snapshot tags its summaries with the snapshot size; a reader must never see
// a count paired with records from a different snapshot.
func TestReplaceAllAtomicUnderConcurrentReads(t *testing.T) {
	s := New()
	sizes := []int{1, 4, 7, 10, 2, 12}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			n := sizes[i%len(sizes)]
			s.ReplaceAll(makeRecords(fmt.Sprintf("n%d-", min(n, Capacity)), n))
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dst := make([]Record, 3)
			for {
				select {
				case <-stop:
					return
				default:
				}
				v := s.Window(2, dst)
				tag := fmt.Sprintf("n%d-", v.Count)
				for i, rec := range dst {
					if !rec.Valid {
						continue
					}
					if !strings.HasPrefix(rec.Summary.String(), tag) {
						select {
						case errs <- fmt.Sprintf("count %d with slot %d %q", v.Count, i, rec.Summary.String()):
						default:
						}
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}
}
