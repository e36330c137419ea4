package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/schoolmed/console/core"
)

func printTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// renderError rewrites service errors into operator-friendly messages.
// The taxonomy mirrors what the backend can throw at us: validation,
// permission, not-found, auth, server, network -- plus the partial-success
// outcome of the two-step writes, which must never be masked.
func renderError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		var b strings.Builder
		b.WriteString("invalid input:")
		for _, fld := range vErr.Fields {
			fmt.Fprintf(&b, "\n  %s: %s", fld.Field, fld.Error)
		}
		return errors.New(b.String())
	}

	var pErr *core.PermissionError
	if errors.As(err, &pErr) {
		return errors.Errorf("%v (client-side check; nothing was sent)", pErr)
	}

	var partial *core.PartialWriteError
	if errors.As(err, &partial) {
		return errors.Errorf(
			"PARTIAL WRITE: %s/%s was created but the follow-up call failed (%v); fix it up manually",
			partial.Created, partial.CreatedID, partial.Err)
	}

	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsNetwork():
			return errors.New("could not reach the backend; check your connection and base URL")
		case apiErr.StatusCode == 401:
			return errors.New("session expired, log in again")
		case apiErr.StatusCode == 403:
			return errors.New("the backend denied this operation for your role")
		case apiErr.StatusCode == 404:
			return errors.New("not found")
		case apiErr.StatusCode >= 500:
			return errors.Errorf("the backend hit an internal error (%d); try again later", apiErr.StatusCode)
		default:
			return errors.New(apiErr.Message)
		}
	}
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
