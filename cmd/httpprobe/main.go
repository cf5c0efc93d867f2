package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"

	"github.com/caarlos0/env/v11"
)

// config holds the probe's settings.
type config struct {
	Target  string `env:"TARGET" envDefault:"http://127.0.0.1:42069/"`
	Workers int    `env:"WORKERS" envDefault:"100"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	fmt.Printf("Firing %d parallel requests at %s\n", cfg.Workers, cfg.Target)

	var mu sync.Mutex
	tally := map[string]int{}
	var failures int

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(cfg.Target)
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			mu.Lock()
			tally[resp.Status]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	statuses := make([]string, 0, len(tally))
	for status := range tally {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	fmt.Println("Status lines:")
	for _, status := range statuses {
		fmt.Printf("- %s: %d\n", status, tally[status])
	}
	if failures > 0 {
		fmt.Printf("- connection failures: %d\n", failures)
	}
}
