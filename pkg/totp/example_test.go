package totp_test

import (
	"fmt"
	"log"
	"time"

	"github.com/jhahn/go-totp/pkg/totp"
)

func Example() {
	engine := totp.NewEngine(totp.Config{})

	key, err := totp.GenerateKey()
	if err != nil {
		log.Fatal(err)
	}
	if err := engine.SetKey("registration", key); err != nil {
		log.Fatal(err)
	}

	code, err := engine.Generate("registration")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := engine.Validate("registration", code)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}

func ExampleEngine_GenerateAt() {
	engine := totp.NewEngine(totp.Config{Digits: 8})
	if err := engine.SetKey("demo", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"); err != nil {
		log.Fatal(err)
	}

	// The RFC 6238 reference key and time.
	code, err := engine.GenerateAt("demo", time.Unix(59, 0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(code)
	// Output: 94287082
}

func ExampleEngine_Generate_derived() {
	engine := totp.NewEngine(totp.Config{})
	if err := engine.SetKey("recovery", "JBSWY3DPEHPK3PXP"); err != nil {
		log.Fatal(err)
	}

	// One stored secret, a distinct sub-key per user.
	code, err := engine.Generate("recovery", "user-1042")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := engine.Validate("recovery", code, "user-1042")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}
