package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// LogLevel 日志级别，值越小打印得越多
type LogLevel int

const (
	DEBUG LogLevel = iota // 0
	INFO                  // 1
	WARN                  // 2
	ERROR                 // 3
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// 为了让 cobra 的 VarP 接收自定义类型，实现 pflag.Value 接口(String Set Type)
func (l *LogLevel) String() string { return levelNames[*l] }

func (l *LogLevel) Set(val string) error {
	for level, name := range levelNames {
		if strings.EqualFold(name, val) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("无效的日志等级: %s", val)
}

func (l *LogLevel) Type() string {
	return "loglevel"
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，output 为 "stdout" 时输出到控制台，否则追加写入文件
// 重复调用会关闭之前打开的日志文件
func InitLogger(output string, level LogLevel) error {
	mu.Lock()
	defer mu.Unlock()

	var out *os.File
	if output == "stdout" || output == "" {
		out = os.Stdout
	} else {
		f, err := os.OpenFile(
			// 以追加模式打开日志文件，不会覆盖已有内容
			output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
		out = f
	}

	closeFileLocked()
	logFile = out
	logger = log.New(out, "", log.LstdFlags)
	currentLevel = level
	return nil
}

// SetOutput 把日志写到任意 writer，主要给测试用
func SetOutput(w io.Writer, level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger = log.New(w, "", 0)
	currentLevel = level
}

// 设置日志级别
func SetLogLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

func logMessage(level LogLevel, tag string, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags) // 默认输出到控制台
	}
	if level < currentLevel {
		return
	}
	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	logger.Printf("[%s:%d] %s %s", filepath.Base(file), line, tag, fmt.Sprintf(msg, args...))
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG]", msg, args...)
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO]", msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN]", msg, args...)
}

// Error 记录 ERROR 日志
func Error(msg string, args ...any) {
	logMessage(ERROR, "[ERR]", msg, args...)
}

func closeFileLocked() error {
	var err error
	if logFile != nil && logFile != os.Stdout {
		err = logFile.Close()
	}
	logFile = nil
	return err
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeFileLocked()
	logger = nil
	return err
}
