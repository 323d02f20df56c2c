package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"dcs/internal/model"
)

func main() {
	var count int
	var outputFile string
	flag.IntVar(&count, "count", 100, "number of orders to generate")
	flag.StringVar(&outputFile, "output", "bronze.orders.jsonl", "output file")
	flag.Parse()

	if err := generateOrders(count, outputFile); err != nil {
		log.Fatalf("generation failed: %v", err)
	}
}

func generateOrders(count int, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	customers := []string{"C001", "C002", "C003", "C004", "C005"}
	statuses := []string{"completed", "completed", "completed", "cancelled", "pending"}

	baseTime := time.Now().UTC().AddDate(0, 0, -3).Truncate(time.Hour)
	rand.Seed(time.Now().UnixNano())

	enc := json.NewEncoder(file)
	for i := 0; i < count; i++ {
		ts := baseTime.Add(time.Duration(i) * 10 * time.Minute)
		order := model.Order{
			OrderID:    fmt.Sprintf("%d", 1001+i),
			CustomerID: customers[rand.Intn(len(customers))],
			OrderTS:    ts.Format("2006-01-02T15:04:05"),
			Amount:     decimal.New(int64(100+rand.Intn(19900)), -2), // 1.00-199.99
			Status:     statuses[rand.Intn(len(statuses))],
		}
		if err := enc.Encode(&order); err != nil {
			return fmt.Errorf("encode order %d: %w", i+1, err)
		}
	}

	log.Printf("generated %d orders to %s", count, outputFile)
	return nil
}
