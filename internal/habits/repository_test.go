package habits

import (
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/models"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func TestRepositoryAdd(t *testing.T) {
	r := NewRepository(nil)

	a := r.Add("Read", models.TimeMorning, "u1", testNow)
	b := r.Add("Walk", models.TimeEvening, "", testNow)

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("ids not unique: %q, %q", a.ID, b.ID)
	}
	if !a.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", a.CreatedAt, testNow)
	}
	if a.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", a.UserID)
	}

	list := r.List()
	if len(list) != 2 || list[0].Name != "Read" || list[1].Name != "Walk" {
		t.Errorf("List() = %+v, want insertion order Read, Walk", list)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	r := NewRepository(nil)
	h := r.Add("Read", models.TimeMorning, "", testNow)

	name := "Read 20 pages"
	if !r.Update(h.ID, models.HabitUpdate{Name: &name}) {
		t.Fatal("Update() = false for existing habit")
	}
	got, _ := r.Get(h.ID)
	if got.Name != name {
		t.Errorf("Name = %q, want %q", got.Name, name)
	}
	if got.TimePreference != models.TimeMorning {
		t.Errorf("TimePreference changed to %q by a name-only update", got.TimePreference)
	}

	pref := models.TimeEvening
	r.Update(h.ID, models.HabitUpdate{TimePreference: &pref})
	got, _ = r.Get(h.ID)
	if got.TimePreference != models.TimeEvening || got.Name != name {
		t.Errorf("after preference update got %+v", got)
	}

	if r.Update("missing", models.HabitUpdate{Name: &name}) {
		t.Error("Update() of missing id = true")
	}
}

func TestRepositoryRemove(t *testing.T) {
	r := NewRepository(nil)
	a := r.Add("A", models.TimeAnytime, "", testNow)
	b := r.Add("B", models.TimeAnytime, "", testNow)
	c := r.Add("C", models.TimeAnytime, "", testNow)

	snapshot := r.List()

	if !r.Remove(b.ID) {
		t.Fatal("Remove() = false for existing habit")
	}
	if r.Remove(b.ID) {
		t.Error("second Remove() = true")
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != c.ID {
		t.Errorf("List() after remove = %+v", list)
	}
	if len(snapshot) != 3 || snapshot[1].ID != b.ID {
		t.Error("earlier snapshot was modified by Remove")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRepositoryListIsCopy(t *testing.T) {
	r := NewRepository([]models.Habit{{ID: "h1", Name: "Read"}})
	list := r.List()
	list[0].Name = "changed"

	got, ok := r.Get("h1")
	if !ok || got.Name != "Read" {
		t.Errorf("repository modified through List(): %+v", got)
	}
}
