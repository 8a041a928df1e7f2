package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"usergrip/internal/eventbus"
	"usergrip/internal/identity"
	"usergrip/internal/search"
)

const queryConcurrency = 4

var errQueryFailed = errors.New("one or more searches failed")

// runQuery searches every term through its own controller and prints the
// outcomes in argument order
func runQuery(ctx context.Context, w io.Writer, client search.Searcher, bus eventbus.EventBus, terms []string) error {
	states := make([]search.State, len(terms))

	var g errgroup.Group
	g.SetLimit(queryConcurrency)
	for i, term := range terms {
		g.Go(func() error {
			controller := search.NewController(client, identity.UUIDGenerator{}, bus)
			states[i] = controller.Search(ctx, term)
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	for i, st := range states {
		if len(terms) > 1 {
			fmt.Fprintf(w, "%s:\n", terms[i])
		}
		switch st.Status {
		case search.Failure:
			failed = true
			fmt.Fprintf(w, "error: %s\n", st.Err)
		case search.Success:
			if len(st.Items) == 0 {
				fmt.Fprintln(w, "no users found")
			}
			for _, item := range st.Items {
				u := item.User
				fmt.Fprintf(w, "%s  #%d  %s  %s\n", u.Login, u.ID, u.AccountType, u.ProfileURL)
			}
		}
	}

	if failed {
		return errQueryFailed
	}
	return nil
}
