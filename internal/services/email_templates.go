package services

// HTML template for the customer-facing confirmation email. Placeholders:
// type label, reference number, year.
const quoteConfirmationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>We received your quote request</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #1d3c6e; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 24px; }
  .content { padding: 30px; text-align: left; }
  .reference { font-size: 22px; font-weight: bold; letter-spacing: 2px; color: #1d3c6e; background-color: #f1f3f5; padding: 12px 18px; border-radius: 5px; display: inline-block; margin: 15px 0; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
  p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>We received your quote request</h1>
    </div>
    <div class="content">
      <p>Hello,</p>
      <p>Thanks for requesting a %s quote. Your reference number is:</p>
      <div class="reference">%s</div>
      <p>One of our commercial transportation specialists will review your submission and be in touch shortly. Keep this reference number handy when you contact us.</p>
    </div>
    <div class="footer">
      © %d FleetCover Insurance Services. All rights reserved.
    </div>
  </div>
</body>
</html>`

// HTML template for the internal staff notice. Placeholders: type label,
// reference number, business name, contact name, email, phone, state,
// timestamp.
const quoteStaffNoticeEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <h2>New Quote Request — %s</h2>
    <ul>
      <li><strong>Reference:</strong> %s</li>
      <li><strong>Business:</strong> %s</li>
      <li><strong>Contact:</strong> %s</li>
      <li><strong>Email:</strong> %s</li>
      <li><strong>Phone:</strong> %s</li>
      <li><strong>State:</strong> %s</li>
      <li><strong>Timestamp (UTC):</strong> %s</li>
    </ul>
  </div>
</body>
</html>`

// Staff notice for contact-form and policy-service submissions.
// Placeholders: heading, list items HTML, timestamp.
const inquiryStaffNoticeEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <h2>%s</h2>
    <ul>
      %s
      <li><strong>Timestamp (UTC):</strong> %s</li>
    </ul>
  </div>
</body>
</html>`
