package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Analyze runs the image-analysis workflow: load an image file, submit it and
// print the verdict. The view is protected.
func (a *App) Analyze(ctx context.Context) error {
	if a.router.Navigate(ViewUpload) != ViewUpload {
		fmt.Println("Please sign in first.")
		return nil
	}

	path, err := getSimpleText(a.reader, "Path of the image to analyze", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	image, err := LoadImage(path)
	switch {
	case errors.Is(err, ErrNotAnImage):
		fmt.Println("That file does not look like an image.")
		return nil
	case errors.Is(err, ErrImageTooLarge):
		fmt.Println("The image is too large to analyze.")
		return nil
	case err != nil:
		log.Printf("Cannot read image: %s", err.Error())
		return nil
	}

	a.analysisFlow.SelectImage(filepath.Base(path), image)

	if err := a.analysisFlow.Analyze(ctx); err != nil {
		log.Printf("Analysis failed: %s", err.Error())
		return nil
	}

	res := a.analysisFlow.Result()
	fmt.Printf("Verdict: %s (confidence %.0f%%)\n", res.Verdict, res.Confidence*100)
	fmt.Printf("Reference: %s\n", res.ID)
	return nil
}
