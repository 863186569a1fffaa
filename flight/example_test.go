package flight_test

import (
	"context"
	"fmt"

	"github.com/karupanerura/lazyload/flight"
	"github.com/karupanerura/lazyload/source"
)

func ExampleCache() {
	calls := 0
	cache := flight.New[string](source.ListFunc[string](func(context.Context) ([]string, error) {
		calls++
		return []string{"Question 1", "Question 2"}, nil
	}))

	ctx := context.Background()

	// prefetch on the entry page, then read on the quiz page
	f := cache.Request()
	if _, err := f.Wait(ctx); err != nil {
		panic(err)
	}
	questions, err := cache.EnsureLoaded(ctx)
	if err != nil {
		panic(err)
	}

	fmt.Println(questions)
	fmt.Println(cache.State().Status)
	fmt.Println(calls)
	// Output:
	// [Question 1 Question 2]
	// ready
	// 1
}

func ExampleGroup() {
	group := flight.NewGroup[string, int](source.KeyedListFunc[string, int](func(_ context.Context, key string) ([]int, error) {
		return []int{len(key)}, nil
	}))

	ctx := context.Background()
	for _, key := range []string{"a", "bb", "a"} {
		data, err := group.EnsureLoaded(ctx, key)
		if err != nil {
			panic(err)
		}
		fmt.Println(key, data)
	}
	fmt.Println(group.State("ccc").Status)
	// Output:
	// a [1]
	// bb [2]
	// a [1]
	// idle
}
