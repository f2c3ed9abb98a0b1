// Command reel-agent replays scripted conversational turns through the
// canned text-to-speech engine, optionally playing the frames on the
// local audio device. It stands in for the real-time room pipeline the
// engine is normally mounted into.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	coreaudio "github.com/voicereel/reel-core/core/audio"
	"github.com/voicereel/reel-core/core/audio/miniaudio"
	"github.com/voicereel/reel-core/core/events"
	"github.com/voicereel/reel-core/core/texttospeech"
	"github.com/voicereel/reel-core/core/texttospeech/canned"
)

var version = "0.1.0-dev"

func main() {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "reel-agent.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := []texttospeech.TextToSpeechOption{}
	if cfg.Playback {
		output, err := miniaudio.NewPlaybackClient(coreaudio.GetDefaultEncodingInfo())
		if err != nil {
			logger.Error("failed to open playback device", slog.String("error", err.Error()))
			os.Exit(1)
		}
		opts = append(opts, texttospeech.WithAudioOutput(output))
	}

	engine := canned.New(cfg.AssetDir, opts...)
	defer engine.Close()

	subscription := engine.SubscribeKind(events.KindSpeechMetricsCollected, func(event events.Event) {
		metrics, ok := event.(events.SpeechMetricsCollected)
		if !ok {
			return
		}
		logger.Info("metrics collected",
			slog.String("stream_id", metrics.StreamID),
			slog.Int("chars", metrics.Metrics.Chars),
			slog.Duration("duration", metrics.Metrics.Duration),
			slog.Float64("cost_usd", metrics.Metrics.CostUSD),
		)
	})
	defer subscription.Unsubscribe()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, turn := range cfg.Turns {
		if ctx.Err() != nil {
			break
		}
		runTurn(ctx, logger, engine, turn)
	}

	logger.Info("shutdown complete")
}

func runTurn(ctx context.Context, logger *slog.Logger, engine *canned.Engine, turn Turn) {
	stream := engine.NewSpeechStream(ctx)
	defer stream.Close()

	go func() {
		for _, fragment := range turn.Fragments {
			_ = stream.SendText(fragment)
		}
		_ = stream.EndOfText()
	}()

	frames := 0
	for frame := range stream.Frames {
		if ctx.Err() != nil {
			return
		}
		if output := engine.Output(); output != nil {
			if err := output.SendAudio(frame.Data); err != nil {
				logger.Warn("failed to play frame", slog.String("error", err.Error()))
			}
		}
		frames++
	}

	logger.Info("turn played", slog.String("stream_id", stream.ID()), slog.Int("frames", frames))
}
