package calculator_test

import (
	"fmt"

	"finance-calculator/calculator"
	"finance-calculator/domain"
)

func ExamplePresentValue() {
	res, err := calculator.PresentValue(1000, 5, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f %.2f\n", res.PresentValue, res.TotalInterest)
	// Output: 620.92 379.08
}

func ExampleNetPresentValue() {
	npv, err := calculator.NetPresentValue(1000, 10, 1, domain.EndOfPeriod, []float64{300, 400, 500})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", npv)
	// Output: -21.04
}
