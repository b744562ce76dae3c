package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

func ExampleFirst() {
	fmt.Println(arr.First([]int{5, 4, 3, 2, 1}))
	fmt.Println(arr.First([]int{5, 4, 3, 2, 1}, 3))
	// Output:
	// [5]
	// [5 4 3]
}

func ExamplePluck() {
	stooges := []map[string]any{
		{"name": "moe", "age": 40},
		{"name": "larry", "age": 50},
		{"name": "curly", "age": 60},
	}
	fmt.Println(arr.Pluck(stooges, "name"))
	// Output: [moe larry curly]
}

func ExampleDefaults() {
	iceCream := map[string]string{"flavor": "chocolate"}
	arr.Defaults(iceCream, map[string]string{"flavor": "vanilla", "sprinkles": "lots"})
	fmt.Println(iceCream["flavor"], iceCream["sprinkles"])
	// Output: chocolate lots
}

func ExampleGet() {
	m := map[string]any{"user": map[string]any{"name": "Alice"}}
	fmt.Println(arr.Get(m, "user.name"))
	fmt.Println(arr.Get(m, "user.age", 30))
	// Output:
	// Alice
	// 30
}
