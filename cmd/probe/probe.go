package probe

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/util/command"
)

const (
	verboseFlag string = "verbose"
	timeoutFlag string = "timeout"

	defaultTimeout = 10 * time.Second
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(verboseFlag, "v", false, "Print the response body")
	cmd.Flags().Duration(timeoutFlag, defaultTimeout, "Timeout of the probe request")
}

// probeURL points at path on the locally running server.
func probeURL(listenAddress string, path string) string {
	host, port, err := net.SplitHostPort(listenAddress)
	if err != nil {
		return "http://" + strings.TrimPrefix(listenAddress, ":") + path
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return "http://" + net.JoinHostPort(host, port) + path
}

// run requests path and fails unless the server answers 200.
func run(cmd *cobra.Command, path string) error {
	verbose, err := cmd.Flags().GetBool(verboseFlag)
	if err != nil {
		return errors.Wrapf(err, "failed to get %s flag", verboseFlag)
	}
	timeout, err := cmd.Flags().GetDuration(timeoutFlag)
	if err != nil {
		return errors.Wrapf(err, "failed to get %s flag", timeoutFlag)
	}

	cfg := config.DefaultServiceConfigFromEnv()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL(cfg.Echo.ListenAddress, path), nil)
	if err != nil {
		return errors.Wrap(err, "failed to create probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read probe response")
	}

	if verbose {
		fmt.Fprint(cmd.OutOrStdout(), string(body))
	}

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("probe %s failed with status %d", path, res.StatusCode)
	}

	return nil
}
