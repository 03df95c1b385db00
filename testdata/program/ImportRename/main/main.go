package main

import (
	"fmt"
	"time"
)

func main() {
	var w wall
	_ = w.SetD(time.Minute)
	d, _ := w.D()

	var t tick
	_ = t.SetD(42)
	n, _ := t.D()

	// Output: 1m0s 42
	fmt.Println(d, n)
}
