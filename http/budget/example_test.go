package budget_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amp-labs/amp-budget/http/budget"
)

// ExampleNew demonstrates sharing one time budget across sequential calls.
func ExampleNew() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	// One Client per logical operation; every call below consumes from
	// the same 2s budget.
	client := budget.New(server.Client(), 2*time.Second)

	rsp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer rsp.Body.Close()

	body, _ := io.ReadAll(rsp.Body)
	fmt.Println(rsp.StatusCode, string(body))
	// Output: 200 ok
}

// ExampleWithClient demonstrates passing the operation's Client through
// the context instead of threading it as a parameter.
func ExampleWithClient() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	fetch := func(ctx context.Context, url string) error {
		client := budget.FromContext(ctx)
		if client == nil {
			return fmt.Errorf("no budget client bound to context")
		}

		rsp, err := client.Get(ctx, url)
		if err != nil {
			return err
		}

		return rsp.Body.Close()
	}

	ctx := budget.WithClient(context.Background(), budget.New(server.Client(), time.Second))

	if err := fetch(ctx, server.URL); err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("fetched")
	// Output: fetched
}
