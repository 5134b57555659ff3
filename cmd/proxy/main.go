package main

import (
	"fmt"
	"log"
	"os"

	"goWebProxy/internals/cache"
	"goWebProxy/internals/proxy"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <port>\n", os.Args[0])
		os.Exit(1)
	}
	port := os.Args[1]

	c := cache.NewCache(proxy.MaxCacheSize, proxy.MaxObjectSize)
	server := proxy.NewServer(c)

	log.Printf("Starting proxy server on :%s", port)
	if err := server.ListenAndServe(":" + port); err != nil {
		log.Fatal(err)
	}
}
