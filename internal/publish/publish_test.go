package publish

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/deck/ingest"
)

func due(ts string) *Due { return &Due{Timestamp: ts} }

func summaries(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Summary
	}
	return out
}

func TestBuildFiltersAndSorts(t *testing.T) {
	tasks := []Task{
		{GUID: "1", Summary: "no due", Status: "todo"},
		{GUID: "2", Summary: "later", Status: "todo", Due: due("1700000600000")},
		{GUID: "3", Summary: "done", Status: "done", Due: due("1")},
		{GUID: "4", Summary: "soon", Status: "todo", Due: due("1700000000000")},
		{GUID: "5", Summary: "bad due", Status: "todo", Due: due("tomorrow")},
		{GUID: "6", Summary: "also soon", Status: "todo", Due: due("1700000000000")},
	}
	got := summaries(Build(tasks))
	want := []string{"soon", "also soon", "later", "no due", "bad due"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestEncodeFields(t *testing.T) {
	items := Build([]Task{{
		GUID: "g", Summary: "写周报", Status: "todo", CreatedAt: "1", UpdatedAt: "2",
		Due: &Due{Timestamp: "1700000000000", IsAllDay: true},
	}})
	b, err := Encode(items)
	if err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := []map[string]any{{
		"taskId": "g", "summary": "写周报", "status": "todo", "createdAt": "1", "updatedAt": "2",
		"dueTimestamp": "1700000000000", "dueIsAllDay": true,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	empty, _ := Encode(nil)
	if string(empty) != "[]" {
		t.Fatalf("empty = %s", empty)
	}
}

func TestPayloadIngests(t *testing.T) {
	items := Build([]Task{
		{Summary: "b", Status: "todo", Due: due("1700000060000")},
		{Summary: "a", Status: "todo", Due: due("1700000000000")},
	})
	b, _ := Encode(items)
	raws, err := ingest.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 2 || raws[0].Summary != "a" || raws[0].DueMillis != 1700000000000 {
		t.Fatalf("raws = %+v", raws)
	}
}

func TestParseTasks(t *testing.T) {
	yamlDoc := `
items:
  - guid: a
    summary: first
    status: todo
    due:
      timestamp: "1700000000000"
      is_all_day: false
`
	jsonList := `[{"guid":"b","summary":"second","status":"todo"}]`
	jsonWrap := `{"items":[{"guid":"c","summary":"third","status":"done"}]}`

	cases := []struct {
		name, data string
		want       string
	}{
		{"tasks.yaml", yamlDoc, "first"},
		{"tasks.json", jsonList, "second"},
		{"-", jsonWrap, "third"},
		{"-", "- summary: fourth\n  status: todo\n", "fourth"},
	}
	for _, tc := range cases {
		tasks, err := ParseTasks(tc.name, []byte(tc.data))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(tasks) != 1 || tasks[0].Summary != tc.want {
			t.Fatalf("%s: tasks = %+v", tc.name, tasks)
		}
	}
	if tasks, _ := ParseTasks("tasks.yaml", []byte(yamlDoc)); tasks[0].Due == nil || tasks[0].Due.Timestamp != "1700000000000" {
		t.Fatalf("due = %+v", tasks[0].Due)
	}
}

func TestParseTasksNoList(t *testing.T) {
	for _, data := range []string{`{"data":1}`, ``, "name: x\n", "42\n"} {
		if _, err := ParseTasks("-", []byte(data)); !errors.Is(err, ErrNoTasks) {
			t.Fatalf("ParseTasks(%q) = %v", data, err)
		}
	}
}

type recorder struct {
	topic   string
	payload []byte
	err     error
}

func (r *recorder) Publish(topic string, payload []byte) error {
	r.topic, r.payload = topic, payload
	return r.err
}

func TestSnapshot(t *testing.T) {
	r := &recorder{}
	items, err := Snapshot(r, "feishu/messages/tasks", []Task{{Summary: "x", Status: "todo"}})
	if err != nil {
		t.Fatal(err)
	}
	if r.topic != "feishu/messages/tasks" || len(items) != 1 || string(r.payload) != `[{"taskId":"","summary":"x","status":"todo"}]` {
		t.Fatalf("published %s to %s", r.payload, r.topic)
	}

	r.err = errors.New("offline")
	if _, err := Snapshot(r, "t", nil); err == nil {
		t.Fatal("publish error swallowed")
	}
}
