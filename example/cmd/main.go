package main

import (
	"context"
	"fmt"

	"github.com/go-leo/specification/example/userreg"
)

type inMemoryDirectory struct {
	taken map[string]struct{}
}

func (d *inMemoryDirectory) IsAvailable(_ context.Context, username string) bool {
	_, taken := d.taken[username]
	return !taken
}

func main() {
	ctx := context.Background()
	directory := &inMemoryDirectory{taken: map[string]struct{}{"admin": {}}}
	filter := userreg.NewWordListFilter("heck")
	canRegister := userreg.CanRegister(directory, filter)

	candidates := []userreg.User{
		{Username: "alice", Password: "longenough1"},
		{Username: "admin", Password: "longenough1"},
		{Username: "bob", Password: "short"},
		{Username: "heck", Password: "longenough1"},
	}
	for _, user := range candidates {
		fmt.Printf("%s can register: %t\n", user.Username, canRegister.IsSatisfiedBy(ctx, user))
	}
}
