package main

import (
	"fmt"
	"log"
	"os"

	"gregex/internal/script"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <matchfile>", os.Args[0])
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	s, err := script.Parse(string(data))
	if err != nil {
		log.Fatal(err)
	}

	if err := s.Exec(os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println("all checks passed")
}
