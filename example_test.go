package jsonfield_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/jsonfield"
)

type Job struct {
	Company string  `json:"company"`
	Salary  float64 `json:"salary"`
	Remote  bool    `json:"remote"`
}

// Example demonstrates whole-value and field-level access.
func Example() {
	w, err := jsonfield.New(Job{Company: "Apple", Salary: 120000, Remote: true})
	if err != nil {
		log.Fatal(err)
	}

	if err := w.Proxy().Set("company", "Google"); err != nil {
		log.Fatal(err)
	}

	job, err := w.Value()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(job.Company, job.Salary, job.Remote)
	// Output: Google 120000 true
}

// Example_jsonString shows the stored payload as JSON text.
func Example_jsonString() {
	w, err := jsonfield.New(Job{Company: "Apple", Salary: 120000, Remote: true})
	if err != nil {
		log.Fatal(err)
	}

	if s, ok := w.JSONString(); ok {
		fmt.Println(s)
	}
	// Output: {"company":"Apple","salary":120000,"remote":true}
}

// Example_lens demonstrates typed field access without path strings.
func Example_lens() {
	company := jsonfield.Lens[Job, string]{
		Get: func(j Job) string { return j.Company },
		Set: func(j *Job, v string) { j.Company = v },
	}

	w, err := jsonfield.New(Job{Company: "Apple", Salary: 120000})
	if err != nil {
		log.Fatal(err)
	}

	if err := jsonfield.Update(w, company, "Google"); err != nil {
		log.Fatal(err)
	}

	v, err := jsonfield.At(w, company)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(v)
	// Output: Google
}

// Example_fromString constructs a wrapper from externally stored JSON text.
func Example_fromString() {
	w, err := jsonfield.FromString[Job](`{"company":"Apple","salary":120000,"remote":true}`)
	if err != nil {
		log.Fatal(err)
	}

	salary, err := w.Proxy().GetFloat("salary")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(salary)
	// Output: 120000
}
