package main

import (
	"fmt"
	"math/rand"

	"github.com/lanrat/simplesort"
)

var count = 2000

func main() {
	// create a slice with unsorted data
	data := make([]int64, count)
	for i := range data {
		data[i] = rand.Int63n(int64(count))
	}
	copied := append([]int64(nil), data...)

	// sort both copies and compare the work each algorithm did
	_, bubbleStats := simplesort.BubbleSortStats(data, nil)
	_, selectionStats := simplesort.SelectionSortStats(copied, nil)

	if !simplesort.IsSorted(data) || !simplesort.IsSorted(copied) {
		fmt.Println("err: output is not sorted")
		return
	}
	fmt.Printf("bubble:    %s\n", bubbleStats)
	fmt.Printf("selection: %s\n", selectionStats)
}
