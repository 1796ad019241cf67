// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tasks

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestAggregator_Order(t *testing.T) {
	a := NewAggregator()
	a.Add("switch", "transpile", "transpiles the project")
	a.Add("lwjgl3", "run", "starts the application")
	a.Add("switch", "nro", "packages the project")
	a.Add("switch", "deploy", "deploys the NRO")

	var names []string
	for _, d := range a.AllFor("switch") {
		names = append(names, d.Task)
	}
	if want := []string{"transpile", "nro", "deploy"}; !reflect.DeepEqual(names, want) {
		t.Errorf("AllFor(switch) = %v, want %v", names, want)
	}
	if want := []string{"switch", "lwjgl3"}; !reflect.DeepEqual(a.Platforms(), want) {
		t.Errorf("Platforms() = %v, want %v", a.Platforms(), want)
	}
	if got := a.AllFor("android"); len(got) != 0 {
		t.Errorf("AllFor(android) = %v, want empty", got)
	}
}

func TestAggregator_Duplicates(t *testing.T) {
	a := NewAggregator()
	a.Add("switch", "run", "first")
	a.Add("switch", "run", "second")

	got := a.AllFor("switch")
	want := []Description{
		{Platform: "switch", Task: "run", Text: "first"},
		{Platform: "switch", Task: "run", Text: "second"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllFor() = %v, want %v", got, want)
	}
}

func TestAggregator_Concurrent(t *testing.T) {
	a := NewAggregator()
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			id := fmt.Sprintf("p%d", p)
			for i := 0; i < 50; i++ {
				a.Add(id, fmt.Sprintf("task%d", i), "")
			}
		}(p)
	}
	wg.Wait()

	for p := 0; p < 8; p++ {
		descs := a.AllFor(fmt.Sprintf("p%d", p))
		if len(descs) != 50 {
			t.Fatalf("AllFor(p%d) len = %d, want 50", p, len(descs))
		}
		for i, d := range descs {
			if d.Task != fmt.Sprintf("task%d", i) {
				t.Errorf("AllFor(p%d)[%d] = %s, order not preserved", p, i, d.Task)
			}
		}
	}
}
