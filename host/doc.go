// Package host runs the greeting guest under wazero and drives the
// shared-memory protocol from the host side.
//
// # Quick Start
//
//	ctx := context.Background()
//	rt, err := host.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	g, err := rt.Instantiate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close(ctx)
//
//	msg, err := g.Greet(ctx, "Ahoy there", "Testy McTestface")
//	fmt.Println(msg) // "Ahoy there, Testy McTestface!"
//
// # The single view
//
// A Greeter resolves the guest's region offsets exactly once, at
// instantiation. That is the whole point of the protocol: the host never
// re-reads the pointers because the guest guarantees the memory block never
// moves. The guest's memory is declared with min == max == 1 page and the
// runtime is configured with the same hard limit, and every Combine call
// additionally verifies the memory size is byte-identical to the size
// captured at instantiation. A violation surfaces as a memory_growth error,
// which indicates a guest defect, not a caller mistake.
//
// # Thread Safety
//
// Runtime is safe for concurrent use; Greeter is not. Use one Greeter per
// goroutine or synchronize externally.
package host
