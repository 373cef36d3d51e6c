package gff_test

import (
	"fmt"

	"github.com/youx/gff"
)

func ExamplePack() {
	root := gff.NewStruct(0xFFFFFFFF).
		Set("FirstName", gff.CExoString("Drizzt")).
		Set("Level", gff.Byte(20))

	data, err := gff.Pack(root, "BIC ")
	if err != nil {
		fmt.Println("pack failed:", err)
		return
	}

	fmt.Println(len(data) > 0)
	// Output: true
}

func ExampleParse() {
	root := gff.NewStruct(0xFFFFFFFF).Set("Tag", gff.CResRef("nw_player"))

	data, err := gff.Pack(root, "UTC ")
	if err != nil {
		fmt.Println("pack failed:", err)
		return
	}

	parsed, err := gff.Parse(data)
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	v, _ := parsed.Get("Tag")
	fmt.Println(v)
	// Output: nw_player
}
