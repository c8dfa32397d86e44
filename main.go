// BBWxCalc
package main

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/akamensky/argparse"
	"github.com/bbwx/wxcalc-go/wxcalc"
	"github.com/hhkbp2/go-logging"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("BBWxCalc", "Computes derived thermodynamic quantities from one surface observation")

	pres := parser.FloatPositional(&argparse.Options{
		Default: 1000.0,
		Help:    "気圧 pressure [hPa]"})

	tmp := parser.FloatPositional(&argparse.Options{
		Default: 20.0,
		Help:    "気温 temperature [C]"})

	dpt := parser.FloatPositional(&argparse.Options{
		Default: 10.0,
		Help:    "露点温度 dew point [C]"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	format := parser.Selector("f", "file", []string{"CSV", "TEXT"}, &argparse.Options{
		Default: "CSV",
		Help:    "出力形式 CSV or TEXT"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
	}

	// ログレベル設定
	logger := logging.GetLogger("wxcalc")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	logger.Infof("PRES=%g TMP=%g DPT=%g", *pres, *tmp, *dpt)

	// 導出計算
	d := wxcalc.Derive(*pres, *tmp, *dpt)

	if math.IsNaN(d.WBT) {
		logger.Warnf("湿球温度の計算が収束しませんでした (wet bulb iteration did not converge)")
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "CSV" {
		d.ToCSV(buf)
	} else if *format == "TEXT" {
		fmt.Fprintf(buf, "PRES %10.2f hPa\n", d.PRES)
		fmt.Fprintf(buf, "TMP  %10.2f C\n", d.TMP)
		fmt.Fprintf(buf, "DPT  %10.2f C\n", d.DPT)
		fmt.Fprintf(buf, "THTA %10.2f K\n", d.THTA)
		fmt.Fprintf(buf, "MR   %10.2f g/kg\n", d.MR)
		fmt.Fprintf(buf, "RH   %10.2f %%\n", d.RH)
		fmt.Fprintf(buf, "THTE %10.2f K\n", d.THTE)
		fmt.Fprintf(buf, "WBT  %10.2f K\n", d.WBT)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}

	log.Printf("計算が終了しました")
}
