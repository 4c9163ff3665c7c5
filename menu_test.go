package kassa

import (
	"strings"
	"testing"
)

func TestFindMenuItem(t *testing.T) {
	item, ok := FindMenuItem("sh_classic")
	if !ok || item.Name != "Шаурма" || item.Price != 300 {
		t.Errorf("got %+v ok=%v", item, ok)
	}
	if _, ok := FindMenuItem("nope"); ok {
		t.Error("found an item that does not exist")
	}
}

func TestMenuLine(t *testing.T) {
	item, _ := FindMenuItem("dr_tea")
	l := item.MenuLine(3)
	if l.ID != "dr_tea" || l.Price != 45 || l.Quantity != 3 || l.Custom {
		t.Errorf("got %+v", l)
	}
}

func TestCustomLine(t *testing.T) {
	l := CustomLine("Red Bull", 150, 2)
	if !l.Custom {
		t.Error("custom line not flagged")
	}
	if l.ID != "custom_red_bull" {
		t.Errorf("got id %q", l.ID)
	}
	if SumItems([]LineItem{l}) != 300 {
		t.Errorf("got sum %d, want 300", SumItems([]LineItem{l}))
	}
}

func TestMenuPrompt(t *testing.T) {
	prompt := MenuPrompt()
	if !strings.Contains(prompt, "sh_classic: Шаурма (300р)") {
		t.Errorf("prompt misses classic entry: %s", prompt)
	}
	if !strings.HasSuffix(prompt, "add_ham: Ветчина (35р)") {
		t.Errorf("prompt misses last entry: %s", prompt)
	}
}
