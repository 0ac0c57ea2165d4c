package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/client"
	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}
	clientConfig := config.LoadClientConfig()

	var (
		resumePath = flag.String("resume", "", "path to the resume (.pdf, .docx or .txt)")
		jdPath     = flag.String("jd", "", "path to a file holding the job description")
		jdText     = flag.String("jd-text", "", "job description text (instead of -jd)")
		title      = flag.String("title", "", "position title")
		server     = flag.String("server", clientConfig.ServerURL, "scoring server base URL")
		rawJSON    = flag.Bool("json", false, "print the raw JSON response")
		health     = flag.Bool("health", false, "check the server is up and exit")
	)
	flag.Parse()

	c := client.NewMatchClient(*server, clientConfig.Timeout)
	if *health {
		if err := c.Health(context.Background()); err != nil {
			log.Fatalf("%s: %v", *server, err)
		}
		fmt.Printf("%s: ok\n", *server)
		return
	}

	if *resumePath == "" || (*jdPath == "" && *jdText == "") {
		flag.Usage()
		os.Exit(2)
	}

	jd := *jdText
	if *jdPath != "" {
		b, err := os.ReadFile(*jdPath)
		if err != nil {
			log.Fatalf("read job description: %v", err)
		}
		jd = string(b)
	}

	sum, err := c.Score(context.Background(), client.ScoreRequest{
		ResumePath:     *resumePath,
		JobDescription: jd,
		PositionTitle:  *title,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *rawJSON {
		fmt.Println(string(sum.Raw))
		return
	}
	printSummary(sum)
}

func printSummary(sum *client.Summary) {
	fmt.Printf("%s\n", sum.Title)
	fmt.Printf("Score:    %.1f/10\n", sum.Score)
	fmt.Printf("Coverage: %.1f%% (%d of %d keywords)\n", sum.CoveragePercentage, len(sum.Matched), len(sum.Considered))
	if len(sum.Matched) > 0 {
		fmt.Printf("Matched:  %s\n", strings.Join(sum.Matched, ", "))
	}
	if len(sum.Missing) > 0 {
		fmt.Printf("Missing:  %s\n", strings.Join(sum.Missing, ", "))
	}
	for _, s := range sum.Suggestions {
		fmt.Printf("- %s\n", s)
	}
}
