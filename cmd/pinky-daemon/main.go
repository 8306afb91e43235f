package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"pinky/internal/assistant"
	"pinky/internal/config"
	"pinky/internal/gateway"
	"pinky/internal/ipc"
	"pinky/internal/music"
	"pinky/internal/notify"
	"pinky/internal/proxy"
	"pinky/internal/reminder"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	asrURL := cli.StringP("asr", "a", "ws://localhost:8092/listen", "Speech recognizer websocket URL")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy address, empty for direct")
	musicFile := cli.StringP("music", "m", "", "Music library JSON path, empty for built-in")
	chimeFile := cli.StringP("chime", "c", "chime.mp3", "Activation chime mp3 path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)

	speaker := &gateway.EspeakSpeaker{Voice: "en"}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("API keys not found", "err", err)
		speaker.Speak("Error, API keys not found, please check the console.")
		os.Exit(1)
	}

	log.Debug("Loaded API keys")

	var httpClient *http.Client
	if *proxyAddr != "" {
		httpClient, err = proxy.NewSocksClient(*proxyAddr)
		if err != nil {
			log.Error("Failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
			os.Exit(1)
		}
		log.Debug("Loaded proxy")
	}

	lib := music.Default()
	if *musicFile != "" {
		lib, err = music.Load(*musicFile)
		if err != nil {
			log.Error("Failed to load music library", "path", *musicFile, "err", err)
			os.Exit(1)
		}
	}

	log.Debug("Loaded music library", "songs", lib.Len())

	store := reminder.NewStore()
	listener := gateway.NewWSListener(*asrURL)

	interp := &assistant.Interpreter{
		Listener:        listener,
		Speaker:         speaker,
		Completer:       gateway.NewOpenRouterCompleter(cfg.OpenRouterAPIKey, httpClient),
		Headliner:       gateway.NewNewsAPIHeadliner(cfg.NewsAPIKey),
		Opener:          gateway.BrowserOpener{},
		Reminders:       store,
		Music:           lib,
		DialogueTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := reminder.NewScheduler(store, speaker)
	sched.Start(ctx)

	wakeCh := make(chan struct{}, 1)
	loop := &assistant.WakeLoop{
		Listener:       listener,
		Speaker:        speaker,
		Interpreter:    interp,
		WakeWord:       "pinky",
		CommandTimeout: 5 * time.Second,
		Wake:           wakeCh,
		Chime: func() {
			if err := notify.Chime(*chimeFile); err != nil {
				log.Warn("Failed to play chime", "err", err)
			}
		},
	}

	if err := ipc.StartServer(ctx, ipc.DefaultSocketPath, func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case "wake":
			select {
			case wakeCh <- struct{}{}:
			default:
			}
		case "stop":
			cancel()
		default:
			log.Warn("Unknown command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("Signal received, shutting down")
		cancel()
	}()

	log.Info("Boot up - successful")
	speaker.Speak("Initializing Pinky.")

	loop.Run(ctx)

	cancel()
	sched.Wait()

	log.Info("Shut down")
}
