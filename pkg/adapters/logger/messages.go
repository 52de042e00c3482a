package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Analyzing %s...":                 "%s を解析中...",
		"Chart saved to %s":               "チャートを %s に保存しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Extract stage
		"Opening media file":                        "メディアファイルを開いています",
		"Selected video track %d":                   "ビデオトラック %d を選択しました",
		"Decoded %d frames (%dx%d)":                 "%d フレームをデコードしました (%dx%d)",
		"No frames could be decoded":                "デコードできたフレームがありません",
		"Skipped %d packets that failed to decode":  "デコードに失敗した %d パケットをスキップしました",
		"Skipping packet %d: %s":                    "パケット %d をスキップ: %s",
		"Read %d packets, %d video frames recorded": "%d パケットを読み込み、%d フレームを記録しました",

		// Transform stage
		"Normalizing series to %s": "系列を %s に正規化中",

		// Render stage
		"Rendering %d samples to %dx%d canvas": "%d サンプルを %dx%d キャンバスに描画中",
		"Series max %.1f, mean %.1f":           "系列の最大値 %.1f, 平均値 %.1f",
		"Wrote %d bytes":                       "%d バイトを書き込みました",

		// Errors
		"Failed to extract frame sizes: %s": "フレームサイズの抽出に失敗しました: %s",
		"Failed to transform series: %s":    "系列の変換に失敗しました: %s",
		"Failed to render chart: %s":        "チャートの描画に失敗しました: %s",

		// Debug sink failures
		"Failed to save series JSON: %s": "系列JSONの保存に失敗しました: %s",
		"Failed to save first frame: %s": "最初のフレームの保存に失敗しました: %s",
		"Failed to save chart copy: %s":  "チャートのコピーの保存に失敗しました: %s",
	})
}
