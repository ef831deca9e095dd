package main

import (
	"fmt"
	"os"
	"time"

	"lox/internal"
)

var source string = `
fun fib(n) {
    if (n < 2) return n;
    return fib(n - 1) + fib(n - 2);
}

class Counter {
    init() {
        this.count = 0;
    }
    inc() {
        this.count = this.count + 1;
        return this.count;
    }
}

var counter = Counter();
for (var i = 0; i < 100000; i = i + 1) {
    counter.inc();
}
print fib(25);
print counter.count;
`

func main() {
	reporter := &internal.Collector{}
	start := time.Now()
	ok := internal.Run(reporter, source)
	fmt.Println("Time elapsed is:", time.Since(start))
	for _, m := range reporter.Messages {
		fmt.Println(m)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, reporter.Err())
		os.Exit(1)
	}
}
