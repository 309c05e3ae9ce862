package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/hupe1980/jsonfield"
)

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type Profile struct {
	Name    string  `json:"name"`
	Salary  float64 `json:"salary"`
	Remote  bool    `json:"remote"`
	Address Address `json:"address"`
}

// Record is what a host persistence framework would actually store: the
// profile rides along as one opaque blob.
type Record struct {
	ID      int                        `json:"id"`
	Profile jsonfield.Wrapper[Profile] `json:"profile"`
}

func main() {
	w, err := jsonfield.New(Profile{
		Name:    "Ada",
		Salary:  120000,
		Remote:  true,
		Address: Address{Street: "Main St", City: "Cupertino"},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Field access ---")

	name, err := w.Proxy().GetString("name")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("name:", name)

	if err := w.Proxy().Set("address.city", "Berlin"); err != nil {
		log.Fatal(err)
	}

	city, err := w.Field("address.city")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("address.city:", city)

	fmt.Println("--- Host persistence round trip ---")

	stored, err := json.Marshal(Record{ID: 7, Profile: *w})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("stored:", string(stored))

	var loaded Record
	if err := json.Unmarshal(stored, &loaded); err != nil {
		log.Fatal(err)
	}

	profile, err := loaded.Profile.Value()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded: %+v\n", profile)
}
