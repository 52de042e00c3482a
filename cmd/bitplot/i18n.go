// Package main provides localization for the bitplot CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Visualize per-frame bitrate of a video as a line chart.": "動画のフレームごとのビットレートを折れ線グラフで可視化します。",

		// Graph command
		"Plot per-frame bitrate of a video as a chart image.": "動画のフレームごとのビットレートをグラフ画像として描画",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"bitplot version %s":        "bitplot バージョン %s",

		// Flags
		"Input video file path.":                               "入力動画ファイルパス",
		"Output chart image path (.png, .jpg).":                "出力グラフ画像パス（.png, .jpg）",
		"Chart canvas size as WIDTH:HEIGHT (default: 1920:1080).": "グラフキャンバスサイズ（幅:高さ、デフォルト: 1920:1080）",
		"Normalize frame sizes to bits per pixel.":             "フレームサイズをピクセルあたりのビット数に正規化",
		"Path to a TTF font file for chart labels.":            "グラフラベル用TTFフォントファイルのパス",
		"Path to ffmpeg executable (falls back to PATH lookup).": "ffmpeg実行ファイルのパス（未指定時はPATHを検索）",
		"Output execution summary to file (Markdown format).":  "実行サマリーをファイルに出力（Markdown形式）",
		"Path to YAML configuration file.":                     "YAML設定ファイルのパス",
		"Enable debug output.":                                 "デバッグ出力を有効化",
		"Directory for debug output (default: ./debug).":       "デバッグ出力のディレクトリ（デフォルト: ./debug）",
		"Log level (debug, info, warn, error; default: info).": "ログレベル（debug, info, warn, error、デフォルト: info）",
		"Suppress all log output.":                             "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Failed to write summary: %s":   "サマリーの書き込みに失敗しました: %s",
	})
}
