/*
 * MIT License
 *
 * Copyright (c) 2022-2024 Tochemey
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor_test

import (
	"context"
	"fmt"
	"time"

	"github.com/AircastDev/agency/actor"
	"github.com/AircastDev/agency/log"
)

type counterMsg interface{}

type increment struct {
	by int
}

type total = actor.Request[struct{}, int]

type shutdown struct{}

type counter struct {
	actor.Base[counterMsg]
	count int
}

func (c *counter) Run(ctx *actor.Context[counterMsg]) {
	switch msg := ctx.Message().(type) {
	case increment:
		c.count += msg.by
	case *total:
		if _, responder, ok := msg.Handle(); ok {
			_ = responder.Respond(c.count)
		}
	case shutdown:
		ctx.Stop()
	}
}

func (c *counter) Stopped(ctx *actor.StoppedContext[counterMsg]) {
	fmt.Printf("stopped with %d message(s) left\n", len(ctx.Drain()))
}

func Example() {
	ctx := context.Background()
	agency, handle := actor.NewAgency(actor.WithLogger(log.DiscardLogger))

	addr, err := actor.Hire[counterMsg](agency, &counter{}, actor.WithName("counter"))
	if err != nil {
		panic(err)
	}

	for i := 1; i <= 3; i++ {
		_ = addr.Send(ctx, increment{by: i})
	}

	count, err := actor.AskTimeout[int](ctx, addr, struct{}{}, time.Second)
	if err != nil {
		panic(err)
	}
	fmt.Println("count:", count)

	_ = addr.SendPriority(shutdown{})
	if err := handle.Wait(ctx); err != nil {
		panic(err)
	}
	// Output:
	// count: 6
	// stopped with 0 message(s) left
}

func ExampleNewFuncActor() {
	ctx := context.Background()
	agency, handle := actor.NewAgency(actor.WithLogger(log.DiscardLogger))

	greeter := actor.NewFuncActor(func(ctx *actor.Context[string]) {
		name := ctx.Message()
		if name == "" {
			ctx.Stop()
			return
		}
		fmt.Println("hello", name)
	}, actor.WithStopping(func(*actor.Context[string]) actor.StoppingResult {
		fmt.Println("bye")
		return actor.Stop
	}))

	addr, _ := actor.Hire[string](agency, greeter)
	_ = addr.Send(ctx, "ada")
	_ = addr.Send(ctx, "grace")
	_ = addr.Send(ctx, "")

	_ = handle.Wait(ctx)
	// Output:
	// hello ada
	// hello grace
	// bye
}

func ExampleNarrow() {
	ctx := context.Background()
	agency, handle := actor.NewAgency(actor.WithLogger(log.DiscardLogger))

	addr, _ := actor.Hire[counterMsg](agency, &counter{})

	// the recipient only knows about increments
	incrementer, err := actor.Narrow[increment](addr)
	if err != nil {
		panic(err)
	}
	_ = incrementer.Send(ctx, increment{by: 40})
	_ = incrementer.Send(ctx, increment{by: 2})

	count, _ := actor.Ask[int](ctx, addr, struct{}{})
	fmt.Println("count:", count)
	fmt.Println("same actor:", incrementer.ID() == addr.ID())

	_ = addr.Send(ctx, shutdown{})
	_ = handle.Wait(ctx)
	// Output:
	// count: 42
	// same actor: true
	// stopped with 0 message(s) left
}
