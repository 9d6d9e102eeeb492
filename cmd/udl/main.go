// Command udl is the headless batch front end: it takes URLs from arguments
// or a file and runs the same download pipeline as the desktop app, reporting
// progress on the console.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/universal-downloader/internal/batch"
	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/convert"
	"github.com/ytget/universal-downloader/internal/cookies"
	"github.com/ytget/universal-downloader/internal/fetch"
	"github.com/ytget/universal-downloader/internal/model"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "udl [urls...]",
		Short:   "Download videos and music playlists in one batch",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.String("dir", "", "download directory (default: ~/Downloads)")
	flags.String("quality", string(config.DefaultQuality), "max video resolution (480p, 720p, 1080p, 1440p, 2160p)")
	flags.String("video-format", string(config.DefaultVideoFormat), "video container (mp4, mkv, webm)")
	flags.String("audio-format", string(config.DefaultAudioFormat), "audio format for music playlists (m4a, mp3, wav, flac, opus)")
	flags.String("browser", config.BrowserNone, "browser to read cookies from (none, chrome, firefox, ...)")
	flags.Int("delay", int(config.DefaultInterJobDelay/time.Second), "pause between downloads in seconds")
	flags.StringP("file", "f", "", "read URLs from a file, one per line")

	if err := v.BindPFlags(flags); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}

	// Optional config file overrides flag defaults
	v.SetConfigName("udl")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "universal-downloader"))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("UDL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Failed to read config file: %v", err)
		}
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	urls := args
	if file := v.GetString("file"); file != "" {
		fromFile, err := readURLFile(file)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}

	cfg := buildConfig(v)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fetcher := fetch.NewService(cfg, cookies.NewProvider(cfg.CookieBrowser), convert.NewService())
	runner := batch.New(fetcher, cfg)

	events, err := runner.Run(cmd.Context(), urls)
	if err != nil {
		return err
	}

	var result *model.Batch
	for ev := range events {
		printEvent(ev)
		if ev.Type == model.EventBatchFinished {
			result = ev.Batch
		}
	}

	if result != nil && result.Failed() > 0 {
		return fmt.Errorf("%s", result.Summary())
	}
	return nil
}

func buildConfig(v *viper.Viper) config.Config {
	cfg := config.Default()
	if dir := v.GetString("dir"); dir != "" {
		cfg.DownloadDir = dir
	}
	cfg.Quality = config.Quality(v.GetString("quality"))
	cfg.VideoFormat = config.VideoFormat(v.GetString("video-format"))
	cfg.AudioFormat = config.AudioFormat(v.GetString("audio-format"))
	cfg.CookieBrowser = v.GetString("browser")
	cfg.InterJobDelay = time.Duration(v.GetInt("delay")) * time.Second
	return cfg
}

// readURLFile reads URLs from a file, one per line, skipping blanks and
// # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL file: %w", err)
	}
	return urls, nil
}

// printEvent writes one runner event to the console
func printEvent(ev model.Event) {
	switch ev.Type {
	case model.EventJobStarted:
		fmt.Printf("[%s] downloading %s\n", ev.Job.Kind, ev.Job.URL)
	case model.EventJobProgress:
		eta := ""
		if ev.ETASec > 0 {
			eta = fmt.Sprintf(" ETA %ds", ev.ETASec)
		}
		fmt.Printf("\r  %.1f%% %s%s   ", ev.Percent, ev.Speed, eta)
	case model.EventJobLog:
		fmt.Printf("\n  %s\n", ev.Message)
	case model.EventJobFinished:
		if ev.Job.Status == model.JobStatusFailed {
			fmt.Printf("\n  failed: %s\n", ev.Job.LastError)
		} else {
			fmt.Printf("\n  done: %s\n", ev.Job.OutputPath)
		}
	case model.EventBatchFinished:
		fmt.Printf("%s\n", ev.Batch.Summary())
	}
}
