package helper

import (
	"fmt"
	"log"
	"runtime"
	"strings"
)

func TraceStack() {
	for i := 1; ; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			panic(fmt.Sprintf("runtime.Caller(%d) failed", i))
		}
		if strings.Contains(file, "go/src/runtime") {
			break
		}

		if s := strings.Split(file, "/src/"); len(s) == 2 {
			log.Printf("%d : %s\n", line, s[1])
		} else if s := strings.Split(file, "/go/"); len(s) == 2 {
			log.Printf("%d : %s\n", line, s[1])
		} else {
			log.Printf("%d : %s\n", line, file)
		}
	}
}
