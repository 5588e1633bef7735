package libuv_test

import (
	"errors"
	"fmt"
	"time"

	libuv "github.com/joeycumines/go-libuv"
)

func ExampleTimer() {
	loop, err := libuv.NewLoop()
	if err != nil {
		panic(err)
	}
	defer loop.Close()

	timer, err := libuv.NewTimer(loop)
	if err != nil {
		panic(err)
	}
	n := 0
	_ = timer.Start(func(t *libuv.Timer) {
		n++
		fmt.Println("tick", n)
		if n == 2 {
			t.Close(func(*libuv.Handle) { fmt.Println("closed") })
		}
	}, time.Millisecond, time.Millisecond)

	more, err := loop.Run(libuv.RunDefault)
	fmt.Println(more, err)
	// Output:
	// tick 1
	// tick 2
	// closed
	// false <nil>
}

func ExampleLoop_Run_panic() {
	loop, err := libuv.NewLoop()
	if err != nil {
		panic(err)
	}
	defer loop.Close()

	idle, _ := libuv.NewIdle(loop)
	_ = idle.Start(func(*libuv.Idle) { panic(`boom`) })

	_, err = loop.Run(libuv.RunDefault)
	var p *libuv.PanicError
	fmt.Println(errors.As(err, &p), p.Value)

	idle.Close(nil)
	_, err = loop.Run(libuv.RunDefault)
	fmt.Println(err)
	// Output:
	// true boom
	// <nil>
}

func ExampleFromCode() {
	code := libuv.ECONNREFUSED.Code()
	err := libuv.FromCode(code)
	fmt.Println(err.Name(), err == libuv.ECONNREFUSED, code < 0)
	// Output:
	// ECONNREFUSED true true
}
